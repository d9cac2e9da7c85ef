package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProperty creates a financed duplex with sensible terms: $200k
// purchase, 25% down at 7% over 30 years, two $1,400 units.
func CreateTestProperty(t *testing.T, db *gorm.DB, userID uint) *models.Property {
	t.Helper()

	property := &models.Property{
		UserID:    userID,
		Address:   fmt.Sprintf("%d Test Street", nextID()),
		ZIP:       "21215",
		YearBuilt: 1950,
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
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return property
}

// CreateTestConditionReport attaches a mostly-good report with a poor roof.
func CreateTestConditionReport(t *testing.T, db *gorm.DB, propertyID uint) *models.ConditionReport {
	t.Helper()

	report := &models.ConditionReport{
		PropertyID: propertyID,
		Overall:    models.GradeGood,
		Roof:       models.GradePoor,
		Foundation: models.GradeGood,
		HVAC:       models.GradeGood,
		Plumbing:   models.GradeGood,
		Electrical: models.GradeGood,
		Kitchen:    models.GradeGood,
	}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to create test condition report: %v", err)
	}
	return report
}

// CreateTestVoucherRent inserts one ceiling row.
func CreateTestVoucherRent(t *testing.T, db *gorm.DB, zip string, bedrooms int, monthlyRent float64) *models.VoucherRent {
	t.Helper()

	row := &models.VoucherRent{
		ZIP:         zip,
		Bedrooms:    bedrooms,
		Zone:        "test-zone",
		MonthlyRent: monthlyRent,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test voucher rent: %v", err)
	}
	return row
}
