package services

import (
	"testing"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/rehab"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/testutil"
)

func newRehabFixture(t *testing.T) (svc RehabServicer, teardown func(), userID, propertyID uint) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	propertySvc := NewPropertyService(db)
	svc = NewRehabService(db, propertySvc)
	user := testutil.CreateTestUser(t, db)
	property := testutil.CreateTestProperty(t, db, user.ID)
	return svc, func() { testutil.TeardownTestDB(t, db) }, user.ID, property.ID
}

func TestUpsertConditionReport(t *testing.T) {
	t.Run("creates_then_replaces", func(t *testing.T) {
		svc, teardown, userID, propertyID := newRehabFixture(t)
		defer teardown()

		created, err := svc.UpsertConditionReport(userID, propertyID, models.ConditionReport{
			Roof: models.GradePoor,
		})
		testutil.AssertNoError(t, err)
		if created.ID == 0 {
			t.Fatal("expected non-zero report ID")
		}

		replaced, err := svc.UpsertConditionReport(userID, propertyID, models.ConditionReport{
			Roof: models.GradeGood,
			HVAC: models.GradeFair,
		})
		testutil.AssertNoError(t, err)

		if replaced.ID != created.ID {
			t.Errorf("expected one report per property: %d vs %d", replaced.ID, created.ID)
		}
		if replaced.Roof != models.GradeGood {
			t.Errorf("expected replaced roof grade, got %s", replaced.Roof)
		}

		report, err := svc.GetConditionReport(userID, propertyID)
		testutil.AssertNoError(t, err)
		if report.HVAC != models.GradeFair {
			t.Errorf("expected stored HVAC fair, got %s", report.HVAC)
		}
	})

	t.Run("unknown_property", func(t *testing.T) {
		svc, teardown, userID, _ := newRehabFixture(t)
		defer teardown()

		_, err := svc.UpsertConditionReport(userID, 9999, models.ConditionReport{})
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetConditionReport(t *testing.T) {
	t.Run("missing_report", func(t *testing.T) {
		svc, teardown, userID, propertyID := newRehabFixture(t)
		defer teardown()

		_, err := svc.GetConditionReport(userID, propertyID)
		testutil.AssertAppError(t, err, "CONDITION_REPORT_NOT_FOUND")
	})
}

func TestScoreProperty(t *testing.T) {
	t.Run("scores_and_prices_stored_report", func(t *testing.T) {
		svc, teardown, userID, propertyID := newRehabFixture(t)
		defer teardown()

		_, err := svc.UpsertConditionReport(userID, propertyID, models.ConditionReport{
			Roof: models.GradePoor,
		})
		testutil.AssertNoError(t, err)

		estimate, err := svc.ScoreProperty(userID, propertyID)
		testutil.AssertNoError(t, err)

		if estimate.ConditionScore != 7 {
			t.Errorf("expected score 7 for a poor roof, got %d", estimate.ConditionScore)
		}
		if estimate.SuggestedTier != rehab.TierLight {
			t.Errorf("expected light tier, got %s", estimate.SuggestedTier)
		}
		// 1680 sqft duplex at the light tier: 1680 x 35 x 0.50 x 1.05 = 30,870 -> 31,000.
		if estimate.EstimatedCost != 31000 {
			t.Errorf("expected cost 31000, got %.2f", estimate.EstimatedCost)
		}
		if estimate.UnitBucket != "duplex" {
			t.Errorf("expected duplex bucket, got %s", estimate.UnitBucket)
		}
		if len(estimate.MajorIssues) != 1 {
			t.Errorf("expected one flagged issue, got %v", estimate.MajorIssues)
		}
	})

	t.Run("requires_a_stored_report", func(t *testing.T) {
		svc, teardown, userID, propertyID := newRehabFixture(t)
		defer teardown()

		_, err := svc.ScoreProperty(userID, propertyID)
		testutil.AssertAppError(t, err, "CONDITION_REPORT_NOT_FOUND")
	})
}

func TestEstimateCost(t *testing.T) {
	t.Run("prices_explicit_tier", func(t *testing.T) {
		svc, teardown, _, _ := newRehabFixture(t)
		defer teardown()

		cost, err := svc.EstimateCost(1680, 2, rehab.TierMedium)
		testutil.AssertNoError(t, err)
		if cost != 61500 {
			t.Errorf("expected 61500, got %.2f", cost)
		}
	})

	t.Run("rejects_unknown_tier", func(t *testing.T) {
		svc, teardown, _, _ := newRehabFixture(t)
		defer teardown()

		_, err := svc.EstimateCost(1680, 2, "sparkle")
		testutil.AssertAppError(t, err, "INVALID_REHAB_TIER")
	})

	t.Run("rejects_non_positive_sqft", func(t *testing.T) {
		svc, teardown, _, _ := newRehabFixture(t)
		defer teardown()

		_, err := svc.EstimateCost(0, 2, rehab.TierMedium)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestCapitalNeededService(t *testing.T) {
	svc, teardown, _, _ := newRehabFixture(t)
	defer teardown()

	b := svc.CapitalNeeded(60000, 2, 12, 6, 1)
	if b.Total != 65400 {
		t.Errorf("expected total 65400, got %.2f", b.Total)
	}
}
