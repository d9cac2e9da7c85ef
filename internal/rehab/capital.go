package rehab

import "math"

// CapitalBreakdown itemizes the total capital a bridge-financed rehab
// requires. All figures are whole dollars; Total is the sum of the other
// four.
type CapitalBreakdown struct {
	HardCosts   float64 `json:"hard_costs"`
	EntryPoints float64 `json:"entry_points"`
	Interest    float64 `json:"interest"`
	ExitPoints  float64 `json:"exit_points"`
	Total       float64 `json:"total"`
}

// CapitalNeeded computes the capital stack for a rehab loan: entry and exit
// points as percentages of the hard-cost loan amount, plus simple
// (non-compounding) carry interest over the stated duration.
func CapitalNeeded(hardCost, entryPointsPct, annualRatePct float64, months int, exitPointsPct float64) CapitalBreakdown {
	if hardCost <= 0 {
		return CapitalBreakdown{}
	}

	b := CapitalBreakdown{
		HardCosts:   math.Round(hardCost),
		EntryPoints: math.Round(hardCost * entryPointsPct / 100),
		Interest:    math.Round(hardCost * (annualRatePct / 100 / 12) * float64(months)),
		ExitPoints:  math.Round(hardCost * exitPointsPct / 100),
	}
	b.Total = b.HardCosts + b.EntryPoints + b.Interest + b.ExitPoints
	return b
}
