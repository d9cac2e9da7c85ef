package finance

// Strategy identifies the income model used for a projection.
type Strategy string

const (
	StrategyLongTerm  Strategy = "long_term"
	StrategyVoucher   Strategy = "voucher"
	StrategyShortTerm Strategy = "short_term"
)

// Strategies lists every supported strategy in analysis order.
var Strategies = []Strategy{StrategyLongTerm, StrategyVoucher, StrategyShortTerm}

// ExitStrategy describes what happens once rehab work is complete.
type ExitStrategy string

const (
	ExitSell      ExitStrategy = "sell"
	ExitRefinance ExitStrategy = "refinance"
)

// VoucherTable resolves a government rent ceiling for a ZIP code and bedroom
// count. Implementations are read-only lookups; a miss is a legitimate
// outcome, not an error, and callers fall back to a market-rent multiplier.
type VoucherTable interface {
	Ceiling(zip string, bedrooms int) (float64, bool)
}

// Unit holds the per-unit figures an acquisition was underwritten with.
// MarketRent and VoucherRent are monthly; the short-term figures are annual
// because that is how market-data providers report them.
type Unit struct {
	Beds  int     `json:"beds"`
	Baths float64 `json:"baths"`
	Sqft  int     `json:"sqft"`

	MarketRent  float64 `json:"market_rent"`
	VoucherRent float64 `json:"voucher_rent"` // 0 means look up the ceiling table

	AnnualRevenue  float64 `json:"annual_revenue"`  // short-term gross, already vacancy-adjusted
	AnnualExpenses float64 `json:"annual_expenses"` // short-term operating costs (cleaning, platform fees, utilities)
}

// monthlyGrossRent returns the combined monthly rent across all units for the
// given strategy. Voucher units without an explicit rent use the ceiling
// table, falling back to market rent times the assumption multiplier when the
// ZIP has no entry.
func monthlyGrossRent(strategy Strategy, in *Inputs, a *Assumptions, table VoucherTable) float64 {
	total := 0.0
	for _, u := range in.Units {
		switch strategy {
		case StrategyVoucher:
			switch {
			case u.VoucherRent > 0:
				total += u.VoucherRent
			default:
				if table != nil {
					if ceiling, ok := table.Ceiling(in.ZIP, u.Beds); ok {
						total += ceiling
						continue
					}
				}
				total += u.MarketRent * a.voucherFallback()
			}
		case StrategyShortTerm:
			total += u.AnnualRevenue / 12
		default:
			total += u.MarketRent
		}
	}
	return total
}

// annualStrategyExpenses returns operating costs specific to the strategy
// that are not covered by taxes, insurance, or the maintenance percentage.
func annualStrategyExpenses(strategy Strategy, in *Inputs) float64 {
	if strategy != StrategyShortTerm {
		return 0
	}
	total := 0.0
	for _, u := range in.Units {
		total += u.AnnualExpenses
	}
	return total
}

// vacancyMonths returns the assumed vacant months per year for the strategy.
// Short-term revenue figures already net out occupancy, so no separate
// vacancy is applied there.
func vacancyMonths(strategy Strategy, a *Assumptions) float64 {
	switch strategy {
	case StrategyVoucher:
		return a.VacancyMonthsVoucher
	case StrategyShortTerm:
		return 0
	default:
		return a.VacancyMonthsLTR
	}
}
