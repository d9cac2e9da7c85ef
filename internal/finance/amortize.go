// Package finance implements the deterministic projection engine behind
// Tunji's deal analysis: fixed-rate amortization, the three income-strategy
// projectors, and the reverse offer solver. Everything here is a pure
// function over value inputs; nothing touches the database or the network,
// so callers may invoke these concurrently without coordination.
package finance

import "math"

// MonthlyPayment returns the fixed monthly payment for a loan using the
// standard amortization formula P*r*(1+r)^n / ((1+r)^n - 1), where r is the
// monthly rate and n the total number of payments. A zero interest rate
// degrades to straight-line amortization (principal / n).
func MonthlyPayment(principal, annualRatePct float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * 12)
	if annualRatePct == 0 {
		return principal / n
	}

	r := annualRatePct / 100 / 12
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// RemainingBalance returns the principal still owed after monthsElapsed
// payments. For r > 0 it uses P*(1+r)^k - payment*((1+r)^k - 1)/r; for a
// zero-rate loan it is P - payment*k. Months beyond maturity clamp to zero.
func RemainingBalance(principal, annualRatePct float64, termYears, monthsElapsed int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if monthsElapsed <= 0 {
		return principal
	}
	if monthsElapsed >= termYears*12 {
		return 0
	}

	payment := MonthlyPayment(principal, annualRatePct, termYears)

	if annualRatePct == 0 {
		return principal - payment*float64(monthsElapsed)
	}

	r := annualRatePct / 100 / 12
	growth := math.Pow(1+r, float64(monthsElapsed))
	balance := principal*growth - payment*(growth-1)/r
	if balance < 0 {
		return 0
	}
	return balance
}
