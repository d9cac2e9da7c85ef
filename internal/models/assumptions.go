package models

import (
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
)

// Default assumption values applied on first load and on reset.
const (
	DefaultVacancyMonthsLTR          = 1.0
	DefaultVacancyMonthsVoucher      = 0.5
	DefaultMaintenancePctOfIncome    = 8.0
	DefaultRentGrowthPct             = 2.0
	DefaultAppreciationPct           = 3.0
	DefaultTaxEscalationPct          = 2.0
	DefaultInsuranceEscalationPct    = 3.0
	DefaultVoucherFallbackMultiplier = 1.10
)

// AssumptionSet holds a user's global projection assumptions. Exactly one
// row exists per user; the update and reset operations bump UpdatedAt, which
// serves as the version stamp for cached analyses.
type AssumptionSet struct {
	Base
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	VacancyMonthsLTR     float64 `json:"vacancy_months_ltr"`
	VacancyMonthsVoucher float64 `json:"vacancy_months_voucher"`

	MaintenancePctOfIncome float64 `json:"maintenance_pct_of_income"`
	RentGrowthPct          float64 `json:"rent_growth_pct"`
	AppreciationPct        float64 `json:"appreciation_pct"`
	TaxEscalationPct       float64 `json:"tax_escalation_pct"`
	InsuranceEscalationPct float64 `json:"insurance_escalation_pct"`

	VoucherFallbackMultiplier float64 `json:"voucher_fallback_multiplier"`
}

// ApplyDefaults resets every assumption to its default value.
func (s *AssumptionSet) ApplyDefaults() {
	s.VacancyMonthsLTR = DefaultVacancyMonthsLTR
	s.VacancyMonthsVoucher = DefaultVacancyMonthsVoucher
	s.MaintenancePctOfIncome = DefaultMaintenancePctOfIncome
	s.RentGrowthPct = DefaultRentGrowthPct
	s.AppreciationPct = DefaultAppreciationPct
	s.TaxEscalationPct = DefaultTaxEscalationPct
	s.InsuranceEscalationPct = DefaultInsuranceEscalationPct
	s.VoucherFallbackMultiplier = DefaultVoucherFallbackMultiplier
}

// FinanceAssumptions maps the stored row onto the projection engine's
// assumption struct.
func (s *AssumptionSet) FinanceAssumptions() *finance.Assumptions {
	return &finance.Assumptions{
		VacancyMonthsLTR:          s.VacancyMonthsLTR,
		VacancyMonthsVoucher:      s.VacancyMonthsVoucher,
		MaintenancePctOfIncome:    s.MaintenancePctOfIncome,
		RentGrowthPct:             s.RentGrowthPct,
		AppreciationPct:           s.AppreciationPct,
		TaxEscalationPct:          s.TaxEscalationPct,
		InsuranceEscalationPct:    s.InsuranceEscalationPct,
		VoucherFallbackMultiplier: s.VoucherFallbackMultiplier,
	}
}

// VoucherRent is one row of the ZIP-to-rent-ceiling table published for the
// voucher program: the maximum monthly rent for a bedroom count within a
// payment zone. The table is shared across users.
type VoucherRent struct {
	Base
	ZIP         string  `gorm:"column:zip;size:5;not null;uniqueIndex:idx_voucher_zip_beds" json:"zip"`
	Bedrooms    int     `gorm:"not null;uniqueIndex:idx_voucher_zip_beds" json:"bedrooms"`
	Zone        string  `json:"zone"`
	MonthlyRent float64 `gorm:"not null" json:"monthly_rent"`
}
