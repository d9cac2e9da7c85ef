package models

import (
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
)

// Property is an acquisition scenario under evaluation: the physical
// building, the financing terms, and the optional rehab plan. Unit-level
// rent figures are stored as a JSON column since they are only ever read
// back as a whole for projection.
type Property struct {
	Base
	UserID uint `gorm:"not null;index" json:"user_id"`

	Address   string `gorm:"not null" json:"address"`
	ZIP       string `gorm:"column:zip;size:5;index" json:"zip"`
	YearBuilt int    `json:"year_built"`

	UnitCount int            `gorm:"not null" json:"unit_count"`
	Units     []finance.Unit `gorm:"serializer:json" json:"units"`
	TotalSqft int            `json:"total_sqft"`

	PurchasePrice      float64 `gorm:"not null" json:"purchase_price"`
	AcquisitionCostPct float64 `json:"acquisition_cost_pct"`
	AcquisitionCostAmt float64 `json:"acquisition_cost_amt"`
	DownPaymentPct     float64 `json:"down_payment_pct"`
	LoanRatePct        float64 `json:"loan_rate_pct"`
	LoanTermYears      int     `json:"loan_term_years"`

	AnnualPropertyTax float64 `json:"annual_property_tax"`
	AnnualInsurance   float64 `json:"annual_insurance"`
	FurnishCost       float64 `json:"furnish_cost"`

	Rehab               bool    `json:"rehab"`
	RehabCost           float64 `json:"rehab_cost"`
	RehabMonths         int     `json:"rehab_months"`
	RehabRatePct        float64 `json:"rehab_rate_pct"`
	RehabEntryPointsPct float64 `json:"rehab_entry_points_pct"`
	RehabExitPointsPct  float64 `json:"rehab_exit_points_pct"`
	AfterRepairValue    float64 `json:"after_repair_value"`
	ExitStrategy        string  `json:"exit_strategy"` // sell or refinance
	RefinanceLTVPct     float64 `json:"refinance_ltv_pct"`
	RefinanceRatePct    float64 `json:"refinance_rate_pct"`

	ConditionReport *ConditionReport `gorm:"foreignKey:PropertyID" json:"condition_report,omitempty"`
}

// FinanceInputs maps the stored property onto the projection engine's input
// struct. The engine re-validates, so this is a plain field copy.
func (p *Property) FinanceInputs() *finance.Inputs {
	return &finance.Inputs{
		Address:             p.Address,
		ZIP:                 p.ZIP,
		YearBuilt:           p.YearBuilt,
		UnitCount:           p.UnitCount,
		Units:               p.Units,
		TotalSqft:           p.TotalSqft,
		PurchasePrice:       p.PurchasePrice,
		AcquisitionCostPct:  p.AcquisitionCostPct,
		AcquisitionCostAmt:  p.AcquisitionCostAmt,
		DownPaymentPct:      p.DownPaymentPct,
		LoanRatePct:         p.LoanRatePct,
		LoanTermYears:       p.LoanTermYears,
		AnnualPropertyTax:   p.AnnualPropertyTax,
		AnnualInsurance:     p.AnnualInsurance,
		FurnishCost:         p.FurnishCost,
		Rehab:               p.Rehab,
		RehabCost:           p.RehabCost,
		RehabMonths:         p.RehabMonths,
		RehabRatePct:        p.RehabRatePct,
		RehabEntryPointsPct: p.RehabEntryPointsPct,
		RehabExitPointsPct:  p.RehabExitPointsPct,
		AfterRepairValue:    p.AfterRepairValue,
		Exit:                finance.ExitStrategy(p.ExitStrategy),
		RefinanceLTVPct:     p.RefinanceLTVPct,
		RefinanceRatePct:    p.RefinanceRatePct,
	}
}
