package services

import (
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/rehab"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// PropertyInput carries every field of an acquisition scenario. It is a
// struct rather than a parameter list because the projector needs all of it
// together and handlers bind it directly from JSON.
type PropertyInput struct {
	Address   string
	ZIP       string
	YearBuilt int

	UnitCount int
	Units     []finance.Unit
	TotalSqft int

	PurchasePrice      float64
	AcquisitionCostPct float64
	AcquisitionCostAmt float64
	DownPaymentPct     float64
	LoanRatePct        float64
	LoanTermYears      int

	AnnualPropertyTax float64
	AnnualInsurance   float64
	FurnishCost       float64

	Rehab               bool
	RehabCost           float64
	RehabMonths         int
	RehabRatePct        float64
	RehabEntryPointsPct float64
	RehabExitPointsPct  float64
	AfterRepairValue    float64
	ExitStrategy        string
	RefinanceLTVPct     float64
	RefinanceRatePct    float64
}

// PropertyServicer defines the contract for property CRUD.
type PropertyServicer interface {
	CreateProperty(userID uint, input PropertyInput) (*models.Property, error)
	GetUserProperties(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error)
	GetPropertyByID(userID, propertyID uint) (*models.Property, error)
	UpdateProperty(userID, propertyID uint, input PropertyInput) (*models.Property, error)
	DeleteProperty(userID, propertyID uint) error
}

// AssumptionServicer manages the per-user global assumption set and the
// shared voucher rent ceiling table. It also implements finance.VoucherTable
// for projections.
type AssumptionServicer interface {
	GetAssumptions(userID uint) (*models.AssumptionSet, error)
	UpdateAssumptions(userID uint, update AssumptionUpdate) (*models.AssumptionSet, error)
	ResetAssumptions(userID uint) (*models.AssumptionSet, error)

	UpsertVoucherRent(zip string, bedrooms int, zone string, monthlyRent float64) (*models.VoucherRent, error)
	ListVoucherRents(page pagination.PageRequest) (*pagination.PageResponse[models.VoucherRent], error)
	Ceiling(zip string, bedrooms int) (float64, bool)
}

// AssumptionUpdate holds optional new values for an assumption set; nil
// fields are left unchanged.
type AssumptionUpdate struct {
	VacancyMonthsLTR          *float64
	VacancyMonthsVoucher      *float64
	MaintenancePctOfIncome    *float64
	RentGrowthPct             *float64
	AppreciationPct           *float64
	TaxEscalationPct          *float64
	InsuranceEscalationPct    *float64
	VoucherFallbackMultiplier *float64
}

// AnalysisServicer runs projections and manages their persisted snapshots.
type AnalysisServicer interface {
	AnalyzeProperty(userID, propertyID uint, strategies []finance.Strategy) ([]models.AnalysisSnapshot, error)
	MaxOffer(userID, propertyID uint, strategy finance.Strategy, targetDSCR float64) (float64, error)
	GetSnapshots(userID, propertyID uint, page pagination.PageRequest) (*pagination.PageResponse[models.AnalysisSnapshot], error)
	GetSnapshotByRef(userID uint, ref string) (*models.AnalysisSnapshot, error)
}

// RehabEstimate is the combined output of the condition scorer and the cost
// estimator for a property: the severity score, suggested tier, flagged
// issues, relative cost weights, and the tier-driven dollar estimate.
type RehabEstimate struct {
	EstimatedCost  float64             `json:"estimated_cost"`
	SuggestedTier  rehab.Tier          `json:"suggested_tier"`
	ConditionScore int                 `json:"condition_score"`
	MajorIssues    []string            `json:"major_issues"`
	Breakdown      rehab.CostBreakdown `json:"breakdown"`
	UnitBucket     string              `json:"unit_bucket"`
}

// RehabServicer manages condition reports and the rehab cost pipeline.
type RehabServicer interface {
	UpsertConditionReport(userID, propertyID uint, report models.ConditionReport) (*models.ConditionReport, error)
	GetConditionReport(userID, propertyID uint) (*models.ConditionReport, error)
	ScoreProperty(userID, propertyID uint) (*RehabEstimate, error)
	EstimateCost(sqft, unitCount int, tier rehab.Tier) (float64, error)
	CapitalNeeded(hardCost, entryPointsPct, annualRatePct float64, months int, exitPointsPct float64) rehab.CapitalBreakdown
}
