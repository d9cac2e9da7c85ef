package finance

import (
	"errors"
	"fmt"
	"math"
)

// ProjectionYears is the modeling horizon for every strategy.
const ProjectionYears = 30

// Validation errors returned by ValidateInputs. Services wrap these into
// structured API errors; the projector itself never runs on invalid inputs.
var (
	ErrNoUnits           = errors.New("at least one unit is required")
	ErrUnitCountMismatch = errors.New("unit count does not match unit details")
	ErrNonPositivePrice  = errors.New("purchase price must be greater than zero")
	ErrInvalidLoanTerm   = errors.New("loan term must be greater than zero")
	ErrInvalidDownPct    = errors.New("down payment percent must be between 0 and 100")
	ErrNegativeRate      = errors.New("loan rate cannot be negative")
	ErrNegativeRehab     = errors.New("rehab cost and duration cannot be negative")
)

// Inputs describes a single acquisition scenario. Monetary figures are
// dollars; percentages are whole numbers (7.25 means 7.25%).
type Inputs struct {
	Address   string `json:"address"`
	ZIP       string `json:"zip"`
	YearBuilt int    `json:"year_built"`

	UnitCount int    `json:"unit_count"`
	Units     []Unit `json:"units"`
	TotalSqft int    `json:"total_sqft"`

	PurchasePrice      float64 `json:"purchase_price"`
	AcquisitionCostPct float64 `json:"acquisition_cost_pct"`
	AcquisitionCostAmt float64 `json:"acquisition_cost_amt"`
	DownPaymentPct     float64 `json:"down_payment_pct"`
	LoanRatePct        float64 `json:"loan_rate_pct"`
	LoanTermYears      int     `json:"loan_term_years"`

	AnnualPropertyTax float64 `json:"annual_property_tax"`
	AnnualInsurance   float64 `json:"annual_insurance"`
	FurnishCost       float64 `json:"furnish_cost"` // short-term setup, part of cash invested

	Rehab               bool         `json:"rehab"`
	RehabCost           float64      `json:"rehab_cost"`
	RehabMonths         int          `json:"rehab_months"`
	RehabRatePct        float64      `json:"rehab_rate_pct"`
	RehabEntryPointsPct float64      `json:"rehab_entry_points_pct"`
	RehabExitPointsPct  float64      `json:"rehab_exit_points_pct"`
	AfterRepairValue    float64      `json:"after_repair_value"`
	Exit                ExitStrategy `json:"exit"`
	RefinanceLTVPct     float64      `json:"refinance_ltv_pct"`
	RefinanceRatePct    float64      `json:"refinance_rate_pct"`
}

// Assumptions holds the global growth and vacancy figures shared by every
// projection. They are passed explicitly on each call so that scenarios can
// be evaluated in parallel against different assumption sets.
type Assumptions struct {
	VacancyMonthsLTR     float64 `json:"vacancy_months_ltr"`
	VacancyMonthsVoucher float64 `json:"vacancy_months_voucher"`

	MaintenancePctOfIncome float64 `json:"maintenance_pct_of_income"`
	RentGrowthPct          float64 `json:"rent_growth_pct"`
	AppreciationPct        float64 `json:"appreciation_pct"`
	TaxEscalationPct       float64 `json:"tax_escalation_pct"`
	InsuranceEscalationPct float64 `json:"insurance_escalation_pct"`

	// VoucherFallbackMultiplier scales market rent when a ZIP is missing
	// from the ceiling table. Zero means use the default of 1.10.
	VoucherFallbackMultiplier float64 `json:"voucher_fallback_multiplier"`
}

func (a *Assumptions) voucherFallback() float64 {
	if a.VoucherFallbackMultiplier <= 0 {
		return 1.10
	}
	return a.VoucherFallbackMultiplier
}

// YearOneSummary is the stabilized first-year operating statement. The three
// ratios are nil when their denominator is zero (all-cash purchase, zero
// price, or zero cash invested); callers decide how to display that.
type YearOneSummary struct {
	GrossIncome float64  `json:"gross_income"`
	Vacancy     float64  `json:"vacancy"`
	Expenses    float64  `json:"expenses"`
	NOI         float64  `json:"noi"`
	DebtService float64  `json:"debt_service"`
	CashFlow    float64  `json:"cash_flow"`
	CapRate     *float64 `json:"cap_rate"`
	DSCR        *float64 `json:"dscr"`
	CashOnCash  *float64 `json:"cash_on_cash"`
}

// YearProjection is one row of the multi-year series.
type YearProjection struct {
	Year               int     `json:"year"`
	GrossIncome        float64 `json:"gross_income"`
	NOI                float64 `json:"noi"`
	DebtService        float64 `json:"debt_service"`
	CashFlow           float64 `json:"cash_flow"`
	Appreciation       float64 `json:"appreciation"`
	PropertyValue      float64 `json:"property_value"`
	Equity             float64 `json:"equity"`
	AnnualReturn       float64 `json:"annual_return"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	CumulativeReturn   float64 `json:"cumulative_return"`
	LoanBalance        float64 `json:"loan_balance"`
}

// Result bundles everything a single strategy projection produces.
type Result struct {
	Strategy     Strategy         `json:"strategy"`
	Summary      YearOneSummary   `json:"summary"`
	CashInvested float64          `json:"cash_invested"`
	Projections  []YearProjection `json:"projections"`
}

// ValidateInputs rejects scenarios the projector cannot model. It returns the
// first problem found; services surface the message to the caller.
func ValidateInputs(in *Inputs) error {
	if len(in.Units) == 0 {
		return ErrNoUnits
	}
	if in.UnitCount != 0 && in.UnitCount != len(in.Units) {
		return fmt.Errorf("%w: count=%d details=%d", ErrUnitCountMismatch, in.UnitCount, len(in.Units))
	}
	if in.PurchasePrice <= 0 {
		return ErrNonPositivePrice
	}
	if in.LoanTermYears <= 0 {
		return ErrInvalidLoanTerm
	}
	if in.DownPaymentPct < 0 || in.DownPaymentPct > 100 {
		return ErrInvalidDownPct
	}
	if in.LoanRatePct < 0 {
		return ErrNegativeRate
	}
	if in.Rehab && (in.RehabCost < 0 || in.RehabMonths < 0) {
		return ErrNegativeRehab
	}
	return nil
}

// loanTerms is the permanent debt a projection carries. For a BRRRR deal
// exiting into a refinance, the bridge loan is replaced by a new loan sized
// at ARV times the refinance LTV.
type loanTerms struct {
	principal float64
	ratePct   float64
	termYears int
}

func permanentLoan(in *Inputs) loanTerms {
	if in.Rehab && in.Exit == ExitRefinance && in.AfterRepairValue > 0 {
		return loanTerms{
			principal: in.AfterRepairValue * in.RefinanceLTVPct / 100,
			ratePct:   in.RefinanceRatePct,
			termYears: in.LoanTermYears,
		}
	}
	return loanTerms{
		principal: in.PurchasePrice * (1 - in.DownPaymentPct/100),
		ratePct:   in.LoanRatePct,
		termYears: in.LoanTermYears,
	}
}

// rehabCapital is the all-in cost of the rehab phase: hard costs plus bridge
// financing points and carry interest.
func rehabCapital(in *Inputs) float64 {
	if !in.Rehab {
		return 0
	}
	points := in.RehabCost * (in.RehabEntryPointsPct + in.RehabExitPointsPct) / 100
	interest := in.RehabCost * (in.RehabRatePct / 100 / 12) * float64(in.RehabMonths)
	return in.RehabCost + points + interest
}

// cashInvested is the total cash left in the deal after closing (and, for a
// BRRRR refinance, after the refi returns capital). Floored at zero so a
// cash-out refinance above basis never produces a negative denominator.
func cashInvested(in *Inputs, loan loanTerms) float64 {
	down := in.PurchasePrice * in.DownPaymentPct / 100
	acq := in.PurchasePrice*in.AcquisitionCostPct/100 + in.AcquisitionCostAmt
	invested := down + acq + rehabCapital(in) + in.FurnishCost

	if in.Rehab && in.Exit == ExitRefinance {
		initialDebt := in.PurchasePrice * (1 - in.DownPaymentPct/100)
		returned := loan.principal - initialDebt
		if returned > 0 {
			invested -= returned
		}
	}
	if invested < 0 {
		return 0
	}
	return invested
}

// Project runs the full projection for one strategy. Inputs must already
// have passed ValidateInputs.
func Project(strategy Strategy, in *Inputs, a *Assumptions, table VoucherTable) (*Result, error) {
	if err := ValidateInputs(in); err != nil {
		return nil, err
	}

	loan := permanentLoan(in)
	payment := MonthlyPayment(loan.principal, loan.ratePct, loan.termYears)
	invested := cashInvested(in, loan)

	grossMonthly := monthlyGrossRent(strategy, in, a, table)
	grossYear1 := grossMonthly * 12
	vacancyFraction := vacancyMonths(strategy, a) / 12
	strategyExpenses := annualStrategyExpenses(strategy, in)

	startValue := in.PurchasePrice
	if in.Rehab && in.AfterRepairValue > 0 {
		startValue = in.AfterRepairValue
	}

	summary := yearOne(in, a, grossYear1, vacancyFraction, strategyExpenses, payment, invested)

	projections := make([]YearProjection, 0, ProjectionYears)
	prevValue := startValue
	cumCashFlow := 0.0
	cumReturn := 0.0

	for y := 1; y <= ProjectionYears; y++ {
		growth := math.Pow(1+a.RentGrowthPct/100, float64(y-1))
		gross := grossYear1 * growth
		vacancy := gross * vacancyFraction
		taxes := in.AnnualPropertyTax * math.Pow(1+a.TaxEscalationPct/100, float64(y-1))
		insurance := in.AnnualInsurance * math.Pow(1+a.InsuranceEscalationPct/100, float64(y-1))
		maintenance := gross * a.MaintenancePctOfIncome / 100
		opEx := taxes + insurance + maintenance + strategyExpenses*growth

		noi := gross - vacancy - opEx

		debtService := 0.0
		if y <= loan.termYears {
			debtService = payment * 12
		}
		cashFlow := noi - debtService

		value := startValue * math.Pow(1+a.AppreciationPct/100, float64(y))
		appreciation := value - prevValue
		balance := RemainingBalance(loan.principal, loan.ratePct, loan.termYears, y*12)
		equity := value - balance
		annualReturn := cashFlow + appreciation

		cumCashFlow += cashFlow
		cumReturn += annualReturn

		projections = append(projections, YearProjection{
			Year:               y,
			GrossIncome:        gross,
			NOI:                noi,
			DebtService:        debtService,
			CashFlow:           cashFlow,
			Appreciation:       appreciation,
			PropertyValue:      value,
			Equity:             equity,
			AnnualReturn:       annualReturn,
			CumulativeCashFlow: cumCashFlow,
			CumulativeReturn:   cumReturn,
			LoanBalance:        balance,
		})
		prevValue = value
	}

	return &Result{
		Strategy:     strategy,
		Summary:      summary,
		CashInvested: invested,
		Projections:  projections,
	}, nil
}

// yearOne builds the stabilized first-year summary from base-rate figures.
func yearOne(in *Inputs, a *Assumptions, grossIncome, vacancyFraction, strategyExpenses, monthlyPayment, invested float64) YearOneSummary {
	vacancy := grossIncome * vacancyFraction
	maintenance := grossIncome * a.MaintenancePctOfIncome / 100
	expenses := in.AnnualPropertyTax + in.AnnualInsurance + maintenance + strategyExpenses
	noi := grossIncome - vacancy - expenses
	debtService := monthlyPayment * 12
	cashFlow := noi - debtService

	s := YearOneSummary{
		GrossIncome: grossIncome,
		Vacancy:     vacancy,
		Expenses:    expenses,
		NOI:         noi,
		DebtService: debtService,
		CashFlow:    cashFlow,
	}
	if in.PurchasePrice > 0 {
		capRate := noi / in.PurchasePrice
		s.CapRate = &capRate
	}
	if debtService > 0 {
		dscr := noi / debtService
		s.DSCR = &dscr
	}
	if invested > 0 {
		coc := cashFlow / invested
		s.CashOnCash = &coc
	}
	return s
}
