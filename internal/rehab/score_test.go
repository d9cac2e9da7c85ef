package rehab

import (
	"strings"
	"testing"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
)

func worstCaseReport() *models.ConditionReport {
	return &models.ConditionReport{
		Overall:           models.GradeNeedsReplacement,
		Roof:              models.GradeNeedsReplacement,
		Foundation:        models.GradeNeedsReplacement,
		HVAC:              models.GradeNeedsReplacement,
		Plumbing:          models.GradeNeedsReplacement,
		Electrical:        models.GradeNeedsReplacement,
		PlumbingLeaks:     true,
		PolybutylenePipes: true,
		KnobAndTubeWiring: true,
		Siding:            models.GradeNeedsReplacement,
		Windows:           models.GradeNeedsReplacement,
		Doors:             models.GradeNeedsReplacement,
		Gutters:           models.GradeNeedsReplacement,
		Landscaping:       models.GradeNeedsReplacement,
		Driveway:          models.GradeNeedsReplacement,
		Fencing:           models.GradeNeedsReplacement,
		Kitchen:           models.GradeNeedsReplacement,
		KitchenCabinets:   models.GradeNeedsReplacement,
		KitchenAppliances: models.GradeNeedsReplacement,
		Bathrooms: []models.BathroomCondition{
			{Overall: models.GradeNeedsReplacement, Fixtures: models.GradeNeedsReplacement, Tile: models.GradeNeedsReplacement},
		},
		Bedrooms:         []models.BedroomCondition{{Overall: models.GradeNeedsReplacement}},
		InteriorGeneral:  models.GradeNeedsReplacement,
		Mold:             true,
		Termites:         true,
		WaterDamage:      true,
		FireDamage:       true,
		StructuralIssues: true,
		CodeViolations:   true,
		OtherIssues:      "sinkhole in yard",
		HasPool:          true,
		PoolCondition:    models.GradeNeedsReplacement,
	}
}

func TestScore(t *testing.T) {
	t.Run("empty_report_scores_zero", func(t *testing.T) {
		result := Score(&models.ConditionReport{}, 1)
		if result.Score != 0 {
			t.Errorf("expected score 0, got %d", result.Score)
		}
		if result.Tier != TierLight {
			t.Errorf("expected light tier, got %s", result.Tier)
		}
		if result.MajorIssues == nil || len(result.MajorIssues) != 0 {
			t.Errorf("expected empty (non-nil) issues, got %v", result.MajorIssues)
		}
	})

	t.Run("all_good_scores_zero", func(t *testing.T) {
		report := &models.ConditionReport{
			Overall: models.GradeGood, Roof: models.GradeGood, Foundation: models.GradeGood,
			HVAC: models.GradeGood, Plumbing: models.GradeGood, Electrical: models.GradeGood,
			Kitchen: models.GradeNew, InteriorGeneral: models.GradeGood,
		}
		if result := Score(report, 2); result.Score != 0 {
			t.Errorf("expected score 0 for a good building, got %d", result.Score)
		}
	})

	t.Run("poor_roof_only", func(t *testing.T) {
		result := Score(&models.ConditionReport{Roof: models.GradePoor}, 1)
		if result.Score != 7 {
			t.Errorf("expected score 7, got %d", result.Score)
		}
		if len(result.MajorIssues) != 1 || !strings.Contains(result.MajorIssues[0], "roof") {
			t.Errorf("expected roof flagged, got %v", result.MajorIssues)
		}
		if result.Breakdown.Structural == 0 {
			t.Error("expected structural weight for a poor roof")
		}
	})

	t.Run("score_bounded_at_100", func(t *testing.T) {
		result := Score(worstCaseReport(), 4)
		if result.Score != 100 {
			t.Errorf("expected worst case clamped to 100, got %d", result.Score)
		}
		if result.Tier != TierFullGut {
			t.Errorf("expected fullgut tier, got %s", result.Tier)
		}
	})

	t.Run("worsening_grades_never_lowers_score", func(t *testing.T) {
		grades := []models.Grade{models.GradeGood, models.GradeFair, models.GradePoor, models.GradeNeedsReplacement}
		prev := -1
		for _, g := range grades {
			report := &models.ConditionReport{
				Overall: g, Roof: g, Foundation: g, HVAC: g,
				Plumbing: g, Electrical: g, Kitchen: g, InteriorGeneral: g,
			}
			score := Score(report, 2).Score
			if score < prev {
				t.Fatalf("grade %s scored %d, below previous %d", g, score, prev)
			}
			prev = score
		}
	})

	t.Run("kitchen_detail_gated_on_kitchen", func(t *testing.T) {
		goodKitchen := Score(&models.ConditionReport{
			Kitchen:         models.GradeGood,
			KitchenCabinets: models.GradeNeedsReplacement,
		}, 1)
		if goodKitchen.Score != 0 {
			t.Errorf("cabinet detail should not score under a good kitchen, got %d", goodKitchen.Score)
		}

		fairKitchen := Score(&models.ConditionReport{
			Kitchen:         models.GradeFair,
			KitchenCabinets: models.GradeNeedsReplacement,
		}, 1)
		kitchenOnly := Score(&models.ConditionReport{Kitchen: models.GradeFair}, 1)
		if fairKitchen.Score <= kitchenOnly.Score {
			t.Errorf("cabinet detail should add under a fair kitchen: %d vs %d", fairKitchen.Score, kitchenOnly.Score)
		}
	})

	t.Run("bathroom_detail_gated_on_bathroom", func(t *testing.T) {
		gated := Score(&models.ConditionReport{
			Bathrooms: []models.BathroomCondition{
				{Overall: models.GradeGood, Fixtures: models.GradeNeedsReplacement},
			},
		}, 1)
		if gated.Score != 0 {
			t.Errorf("fixture detail should not score under a good bathroom, got %d", gated.Score)
		}
	})

	t.Run("each_defect_flag_adds_ten", func(t *testing.T) {
		one := Score(&models.ConditionReport{Mold: true}, 1)
		if one.Score != 10 {
			t.Errorf("expected 10 for one flag, got %d", one.Score)
		}
		two := Score(&models.ConditionReport{Mold: true, Termites: true}, 1)
		if two.Score != 20 {
			t.Errorf("expected 20 for two flags, got %d", two.Score)
		}
		other := Score(&models.ConditionReport{OtherIssues: "foundation crack noted by neighbor"}, 1)
		if other.Score != 10 {
			t.Errorf("expected free-text issues to count as one flag, got %d", other.Score)
		}
	})

	t.Run("hvac_weighted_by_unit_count", func(t *testing.T) {
		report := &models.ConditionReport{HVAC: models.GradeNeedsReplacement}
		single := Score(report, 1).Score
		quad := Score(report, 4).Score
		if quad <= single {
			t.Errorf("expected quad HVAC to outweigh single: %d vs %d", quad, single)
		}
	})

	t.Run("pool_only_scored_when_present", func(t *testing.T) {
		without := Score(&models.ConditionReport{PoolCondition: models.GradeNeedsReplacement}, 1)
		if without.Score != 0 {
			t.Errorf("pool condition without a pool should not score, got %d", without.Score)
		}
		with := Score(&models.ConditionReport{HasPool: true, PoolCondition: models.GradeNeedsReplacement}, 1)
		if with.Score == 0 {
			t.Error("expected a failing pool to score")
		}
	})

	t.Run("tier_matches_score_mapping", func(t *testing.T) {
		result := Score(&models.ConditionReport{Roof: models.GradeNeedsReplacement, Mold: true}, 1)
		if result.Tier != TierForScore(result.Score) {
			t.Errorf("tier %s does not match TierForScore(%d)=%s", result.Tier, result.Score, TierForScore(result.Score))
		}
	})
}
