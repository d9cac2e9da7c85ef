package services

import (
	"testing"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/testutil"
)

func duplexInput() PropertyInput {
	return PropertyInput{
		Address:   "456 Oak Ave",
		ZIP:       "21215",
		YearBuilt: 1948,
		UnitCount: 2,
		Units: []finance.Unit{
			{Beds: 2, Baths: 1, Sqft: 840, MarketRent: 1400},
			{Beds: 2, Baths: 1, Sqft: 840, MarketRent: 1400},
		},
		TotalSqft:         1680,
		PurchasePrice:     200000,
		DownPaymentPct:    25,
		LoanRatePct:       7,
		LoanTermYears:     30,
		AnnualPropertyTax: 2400,
		AnnualInsurance:   1200,
	}
}

func TestCreateProperty(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)

		property, err := svc.CreateProperty(user.ID, duplexInput())
		testutil.AssertNoError(t, err)

		if property.ID == 0 {
			t.Fatal("expected non-zero property ID")
		}
		if property.UserID != user.ID {
			t.Errorf("expected owner %d, got %d", user.ID, property.UserID)
		}
		if len(property.Units) != 2 {
			t.Errorf("expected 2 units, got %d", len(property.Units))
		}
	})

	t.Run("rejects_unprojectable_scenario", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)

		input := duplexInput()
		input.PurchasePrice = 0
		_, err := svc.CreateProperty(user.ID, input)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unit_count_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)

		input := duplexInput()
		input.UnitCount = 3
		_, err := svc.CreateProperty(user.ID, input)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPropertyByID(t *testing.T) {
	t.Run("found_with_units_round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestProperty(t, db, user.ID)

		property, err := svc.GetPropertyByID(user.ID, created.ID)
		testutil.AssertNoError(t, err)

		if len(property.Units) != 2 {
			t.Fatalf("expected 2 units after reload, got %d", len(property.Units))
		}
		if property.Units[0].MarketRent != 1400 {
			t.Errorf("expected market rent 1400, got %.2f", property.Units[0].MarketRent)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetPropertyByID(user.ID, 9999)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})

	t.Run("other_users_property_hidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		owner := testutil.CreateTestUser(t, db)
		stranger := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, owner.ID)

		_, err := svc.GetPropertyByID(stranger.ID, property.ID)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetUserProperties(t *testing.T) {
	t.Run("returns_own_properties_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestProperty(t, db, user1.ID)
		testutil.CreateTestProperty(t, db, user1.ID)
		testutil.CreateTestProperty(t, db, user2.ID)

		result, err := svc.GetUserProperties(user1.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 properties, got %d", result.TotalItems)
		}
		for _, p := range result.Data {
			if p.UserID != user1.ID {
				t.Errorf("leaked property %d owned by %d", p.ID, p.UserID)
			}
		}
	})

	t.Run("paginates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)
		for i := 0; i < 5; i++ {
			testutil.CreateTestProperty(t, db, user.ID)
		}

		result, err := svc.GetUserProperties(user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Errorf("expected page of 2, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
	})
}

func TestUpdateProperty(t *testing.T) {
	t.Run("replaces_scenario", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		input := duplexInput()
		input.PurchasePrice = 215000
		updated, err := svc.UpdateProperty(user.ID, property.ID, input)
		testutil.AssertNoError(t, err)

		if updated.PurchasePrice != 215000 {
			t.Errorf("expected price 215000, got %.2f", updated.PurchasePrice)
		}
	})

	t.Run("validation_still_applies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		input := duplexInput()
		input.Units = nil
		_, err := svc.UpdateProperty(user.ID, property.ID, input)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteProperty(t *testing.T) {
	t.Run("cascades_to_report_and_snapshots", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		propertySvc := NewPropertyService(db)
		assumptionSvc := NewAssumptionService(db)
		analysisSvc := NewAnalysisService(db, propertySvc, assumptionSvc)
		rehabSvc := NewRehabService(db, propertySvc)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		testutil.CreateTestConditionReport(t, db, property.ID)
		_, err := analysisSvc.AnalyzeProperty(user.ID, property.ID, nil)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, propertySvc.DeleteProperty(user.ID, property.ID))

		_, err = propertySvc.GetPropertyByID(user.ID, property.ID)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")

		_, err = rehabSvc.GetConditionReport(user.ID, property.ID)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})

	t.Run("not_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPropertyService(db)
		owner := testutil.CreateTestUser(t, db)
		stranger := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, owner.ID)

		err := svc.DeleteProperty(stranger.ID, property.ID)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}
