package finance

import "errors"

// ErrInvalidTargetDSCR is returned when the requested coverage ratio is not
// a usable lender threshold.
var ErrInvalidTargetDSCR = errors.New("target DSCR must be at least 1.0")

// offerStep is the granularity the solved offer is rounded down to.
const offerStep = 500.0

// MaxOfferForDSCR solves backward for the highest purchase price whose
// year-one DSCR still meets the target, holding the down payment percent,
// rate, and term fixed. It reuses the same income and expense model as
// Project, so income is price-independent and only debt service moves.
//
// The list price in the inputs is the upper bound of the search. An all-cash
// scenario (100% down) has no debt service to cover, so any price qualifies
// and the list price is returned unchanged. When even a token price cannot
// be supported (NOI at or below zero), the solver returns 0.
func MaxOfferForDSCR(strategy Strategy, in *Inputs, a *Assumptions, table VoucherTable, targetDSCR float64) (float64, error) {
	if targetDSCR < 1 {
		return 0, ErrInvalidTargetDSCR
	}
	if err := ValidateInputs(in); err != nil {
		return 0, err
	}

	if in.DownPaymentPct >= 100 {
		return in.PurchasePrice, nil
	}

	grossYear1 := monthlyGrossRent(strategy, in, a, table) * 12
	vacancy := grossYear1 * vacancyMonths(strategy, a) / 12
	maintenance := grossYear1 * a.MaintenancePctOfIncome / 100
	noi := grossYear1 - vacancy - in.AnnualPropertyTax - in.AnnualInsurance - maintenance - annualStrategyExpenses(strategy, in)
	if noi <= 0 {
		return 0, nil
	}

	meets := func(price float64) bool {
		principal := price * (1 - in.DownPaymentPct/100)
		if principal <= 0 {
			return true
		}
		debtService := MonthlyPayment(principal, in.LoanRatePct, in.LoanTermYears) * 12
		return noi/debtService >= targetDSCR
	}

	// DSCR falls monotonically as price rises, so bisect on price.
	lo, hi := 0.0, in.PurchasePrice
	if meets(hi) {
		return hi, nil
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if meets(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	// Round down so the reported offer always satisfies the target.
	offer := float64(int(lo/offerStep)) * offerStep
	return offer, nil
}
