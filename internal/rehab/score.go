package rehab

import (
	"fmt"
	"math"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
)

// Category bucket caps. The buckets are additive but individually capped so
// that no single area of the building can dominate the 0-100 scale.
const (
	overallCap    = 25.0
	structuralCap = 35.0
	exteriorCap   = 15.0
	interiorCap   = 15.0

	defectFlagPoints = 10.0
)

// Per-point dollar multipliers used for the breakdown weights. These are
// relative display proportions only; they are never reconciled against the
// tier-based cost estimate.
const (
	structuralWeightPerPoint = 1500.0
	systemsWeightPerPoint    = 1100.0
	interiorWeightPerPoint   = 850.0
	exteriorWeightPerPoint   = 600.0
	defectWeightPerPoint     = 800.0
)

// CostBreakdown carries the relative severity weight per bucket.
type CostBreakdown struct {
	Structural float64 `json:"structural"`
	Systems    float64 `json:"systems"`
	Interior   float64 `json:"interior"`
	Exterior   float64 `json:"exterior"`
}

// ScoreResult is the output of the condition scorer.
type ScoreResult struct {
	Score       int           `json:"score"`
	Tier        Tier          `json:"tier"`
	MajorIssues []string      `json:"major_issues"`
	Breakdown   CostBreakdown `json:"breakdown"`
}

// gradePoints maps a grade to points on a small/medium/large scale. New,
// Good, and Unknown grades contribute zero.
func gradePoints(g models.Grade, fair, poor, replace float64) float64 {
	switch g {
	case models.GradeFair:
		return fair
	case models.GradePoor:
		return poor
	case models.GradeNeedsReplacement:
		return replace
	default:
		return 0
	}
}

// severe reports whether a grade crosses the "needs attention" threshold
// that lands a category on the major-issues list.
func severe(g models.Grade) bool {
	return g == models.GradePoor || g == models.GradeNeedsReplacement
}

// hvacUnitFactor weights HVAC severity by unit count, since each unit
// typically carries its own system.
func hvacUnitFactor(unitCount int) float64 {
	switch {
	case unitCount >= 4:
		return 1.5
	case unitCount == 3:
		return 1.4
	case unitCount == 2:
		return 1.2
	default:
		return 1.0
	}
}

// Score converts a structured condition assessment into a 0-100 severity
// score, the ordered list of flagged major issues, and the relative cost
// weight per bucket. The scoring is a fixed additive point system; worsening
// any single category never lowers the total.
func Score(report *models.ConditionReport, unitCount int) ScoreResult {
	var issues []string
	flag := func(format string, args ...interface{}) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	// Overall condition (separate whole-property signal, no breakdown weight).
	overall := math.Min(gradePoints(report.Overall, 10, 18, 25), overallCap)

	// Structural: roof and foundation.
	structural := gradePoints(report.Roof, 4, 7, 10) + gradePoints(report.Foundation, 4, 8, 12)
	if severe(report.Roof) {
		flag("roof %s", report.Roof)
	}
	if severe(report.Foundation) {
		flag("foundation %s", report.Foundation)
	}

	// Major systems: HVAC weighted by unit count, plumbing and electrical
	// with material penalties stacked on top of the grade.
	systems := gradePoints(report.HVAC, 2, 4, 5) * hvacUnitFactor(unitCount)
	systems += gradePoints(report.Plumbing, 2, 4, 6)
	systems += gradePoints(report.Electrical, 2, 4, 6)
	if report.PlumbingLeaks {
		systems += 2
		flag("active plumbing leaks")
	}
	if report.PolybutylenePipes {
		systems += 2
		flag("polybutylene supply piping")
	}
	if report.KnobAndTubeWiring {
		systems += 3
		flag("knob-and-tube wiring")
	}
	if severe(report.HVAC) {
		flag("HVAC %s", report.HVAC)
	}
	if severe(report.Plumbing) {
		flag("plumbing %s", report.Plumbing)
	}
	if severe(report.Electrical) {
		flag("electrical %s", report.Electrical)
	}

	structuralBucket := math.Min(structural+systems, structuralCap)

	// Exterior.
	exterior := 0.0
	for _, g := range []models.Grade{
		report.Siding, report.Windows, report.Doors, report.Gutters,
		report.Landscaping, report.Driveway, report.Fencing,
	} {
		exterior += gradePoints(g, 1, 2, 3)
	}
	exterior = math.Min(exterior, exteriorCap)

	// Interior: kitchen detail is gated on the kitchen itself needing work.
	interior := gradePoints(report.Kitchen, 2, 4, 6)
	if report.Kitchen.NeedsWork() {
		interior += gradePoints(report.KitchenCabinets, 0, 1, 2)
		interior += gradePoints(report.KitchenCountertops, 0, 1, 2)
		interior += gradePoints(report.KitchenAppliances, 0, 1, 2)
	}
	if severe(report.Kitchen) {
		flag("kitchen %s", report.Kitchen)
	}

	interior += bathroomAverage(report.Bathrooms)
	interior += gradePoints(report.InteriorGeneral, 1, 2, 3)
	interior += math.Min(bedroomAverage(report.Bedrooms), 3)
	interior = math.Min(interior, interiorCap)

	// Boolean defect flags are additive and stackable; only the total score
	// is capped, not the flags themselves.
	defects := 0.0
	for _, d := range []struct {
		set   bool
		label string
	}{
		{report.Mold, "mold present"},
		{report.Termites, "termite activity"},
		{report.WaterDamage, "water damage"},
		{report.FireDamage, "fire damage"},
		{report.StructuralIssues, "structural issues reported"},
		{report.CodeViolations, "open code violations"},
	} {
		if d.set {
			defects += defectFlagPoints
			flag("%s", d.label)
		}
	}
	if report.OtherIssues != "" {
		defects += defectFlagPoints
		flag("other: %s", report.OtherIssues)
	}

	pool := 0.0
	if report.HasPool {
		pool = gradePoints(report.PoolCondition, 2, 4, 5)
		if severe(report.PoolCondition) {
			flag("pool %s", report.PoolCondition)
		}
	}

	total := overall + structuralBucket + exterior + interior + defects + pool
	score := int(math.Round(math.Min(math.Max(total, 0), 100)))

	if issues == nil {
		issues = []string{}
	}

	return ScoreResult{
		Score:       score,
		Tier:        TierForScore(score),
		MajorIssues: issues,
		Breakdown: CostBreakdown{
			Structural: structural*structuralWeightPerPoint + defects*defectWeightPerPoint,
			Systems:    systems * systemsWeightPerPoint,
			Interior:   interior * interiorWeightPerPoint,
			Exterior:   exterior * exteriorWeightPerPoint,
		},
	}
}

// bathroomAverage averages per-bathroom points across every recorded
// bathroom, with fixture and tile detail gated on that bathroom needing
// work. No recorded bathrooms contributes zero.
func bathroomAverage(baths []models.BathroomCondition) float64 {
	if len(baths) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range baths {
		pts := gradePoints(b.Overall, 2, 4, 5)
		if b.Overall.NeedsWork() {
			pts += gradePoints(b.Fixtures, 0, 1, 2)
			pts += gradePoints(b.Tile, 0, 1, 2)
		}
		total += pts
	}
	return total / float64(len(baths))
}

// bedroomAverage averages per-bedroom points across every recorded bedroom.
func bedroomAverage(beds []models.BedroomCondition) float64 {
	if len(beds) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range beds {
		total += gradePoints(b.Overall, 1, 2, 3)
	}
	return total / float64(len(beds))
}
