// Package rehab implements the condition-to-cost pipeline: a severity score
// over a structured walk-through assessment, a square-footage cost model
// driven by the resulting rehab tier, and the capital stack for bridge
// financing. Like the finance package, everything here is pure.
package rehab

import "math"

// Tier is one of the five ordered rehab severity levels.
type Tier string

const (
	TierLight    Tier = "light"
	TierLitePlus Tier = "liteplus"
	TierMedium   Tier = "medium"
	TierHeavy    Tier = "heavy"
	TierFullGut  Tier = "fullgut"
)

// Tiers lists every tier from lightest to heaviest.
var Tiers = []Tier{TierLight, TierLitePlus, TierMedium, TierHeavy, TierFullGut}

// baseRatePerSqft is the single calibration constant for the cost model, in
// dollars per square foot at the medium tier.
const baseRatePerSqft = 35.0

// conditionFactor scales the base rate by tier.
var conditionFactor = map[Tier]float64{
	TierLight:    0.50,
	TierLitePlus: 0.75,
	TierMedium:   1.00,
	TierHeavy:    1.40,
	TierFullGut:  1.80,
}

// unitMultiplier accounts for duplicated kitchens, baths, and systems in
// multi-unit buildings: roughly 5% per additional unit, capped at quad.
func unitMultiplier(unitCount int) float64 {
	switch {
	case unitCount >= 4:
		return 1.15
	case unitCount == 3:
		return 1.10
	case unitCount == 2:
		return 1.05
	default:
		return 1.00
	}
}

// UnitBucket names the building class for a unit count.
func UnitBucket(unitCount int) string {
	switch {
	case unitCount >= 4:
		return "quad"
	case unitCount == 3:
		return "triplex"
	case unitCount == 2:
		return "duplex"
	default:
		return "single"
	}
}

// Estimate returns the projected rehab cost for a building of the given size
// and unit count at the given tier, rounded to the nearest $500. Unknown
// tiers and non-positive square footage estimate to zero.
func Estimate(sqft, unitCount int, tier Tier) float64 {
	factor, ok := conditionFactor[tier]
	if !ok || sqft <= 0 {
		return 0
	}
	raw := float64(sqft) * baseRatePerSqft * factor * unitMultiplier(unitCount)
	return math.Round(raw/500) * 500
}

// TierForScore maps a 0-100 condition score onto the suggested rehab tier.
func TierForScore(score int) Tier {
	switch {
	case score <= 15:
		return TierLight
	case score <= 30:
		return TierLitePlus
	case score <= 50:
		return TierMedium
	case score <= 70:
		return TierHeavy
	default:
		return TierFullGut
	}
}
