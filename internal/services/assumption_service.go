package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
)

// assumptionService manages the per-user assumption set and the shared
// voucher rent ceiling table.
type assumptionService struct {
	db *gorm.DB
}

// NewAssumptionService creates a new AssumptionServicer.
func NewAssumptionService(db *gorm.DB) AssumptionServicer {
	return &assumptionService{db: db}
}

// GetAssumptions returns the user's assumption set, seeding the defaults on
// first access.
func (s *assumptionService) GetAssumptions(userID uint) (*models.AssumptionSet, error) {
	var set models.AssumptionSet
	err := s.db.Where("user_id = ?", userID).First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		set = models.AssumptionSet{UserID: userID}
		set.ApplyDefaults()
		if err := s.db.Create(&set).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &set, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &set, nil
}

// UpdateAssumptions applies the provided fields and bumps the UpdatedAt
// version stamp. Nil fields are left unchanged.
func (s *assumptionService) UpdateAssumptions(userID uint, update AssumptionUpdate) (*models.AssumptionSet, error) {
	set, err := s.GetAssumptions(userID)
	if err != nil {
		return nil, err
	}

	if update.VacancyMonthsLTR != nil {
		if *update.VacancyMonthsLTR < 0 || *update.VacancyMonthsLTR > 12 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vacancy months must be between 0 and 12")
		}
		set.VacancyMonthsLTR = *update.VacancyMonthsLTR
	}
	if update.VacancyMonthsVoucher != nil {
		if *update.VacancyMonthsVoucher < 0 || *update.VacancyMonthsVoucher > 12 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vacancy months must be between 0 and 12")
		}
		set.VacancyMonthsVoucher = *update.VacancyMonthsVoucher
	}
	if update.MaintenancePctOfIncome != nil {
		set.MaintenancePctOfIncome = *update.MaintenancePctOfIncome
	}
	if update.RentGrowthPct != nil {
		set.RentGrowthPct = *update.RentGrowthPct
	}
	if update.AppreciationPct != nil {
		set.AppreciationPct = *update.AppreciationPct
	}
	if update.TaxEscalationPct != nil {
		set.TaxEscalationPct = *update.TaxEscalationPct
	}
	if update.InsuranceEscalationPct != nil {
		set.InsuranceEscalationPct = *update.InsuranceEscalationPct
	}
	if update.VoucherFallbackMultiplier != nil {
		if *update.VoucherFallbackMultiplier <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "voucher fallback multiplier must be positive")
		}
		set.VoucherFallbackMultiplier = *update.VoucherFallbackMultiplier
	}

	if err := s.db.Save(set).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return set, nil
}

// ResetAssumptions restores every assumption to its default value.
func (s *assumptionService) ResetAssumptions(userID uint) (*models.AssumptionSet, error) {
	set, err := s.GetAssumptions(userID)
	if err != nil {
		return nil, err
	}

	set.ApplyDefaults()
	if err := s.db.Save(set).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return set, nil
}

// bedroomBucket clamps a bedroom count into the published 0-4+ buckets.
func bedroomBucket(bedrooms int) int {
	if bedrooms < 0 {
		return 0
	}
	if bedrooms > 4 {
		return 4
	}
	return bedrooms
}

// UpsertVoucherRent creates or updates the ceiling row for a ZIP and
// bedroom bucket.
func (s *assumptionService) UpsertVoucherRent(zip string, bedrooms int, zone string, monthlyRent float64) (*models.VoucherRent, error) {
	if monthlyRent <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly rent must be positive")
	}
	bucket := bedroomBucket(bedrooms)

	var row models.VoucherRent
	err := s.db.Where("zip = ? AND bedrooms = ?", zip, bucket).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.VoucherRent{ZIP: zip, Bedrooms: bucket, Zone: zone, MonthlyRent: monthlyRent}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &row, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	row.Zone = zone
	row.MonthlyRent = monthlyRent
	if err := s.db.Save(&row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// ListVoucherRents returns a paginated view of the ceiling table.
func (s *assumptionService) ListVoucherRents(page pagination.PageRequest) (*pagination.PageResponse[models.VoucherRent], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.VoucherRent{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []models.VoucherRent
	if err := s.db.Order("zip, bedrooms").Scopes(pagination.Paginate(page)).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(rows, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Ceiling implements finance.VoucherTable. A missing ZIP is reported as a
// miss, not an error; the projector falls back to a market-rent multiplier.
func (s *assumptionService) Ceiling(zip string, bedrooms int) (float64, bool) {
	var row models.VoucherRent
	err := s.db.Where("zip = ? AND bedrooms = ?", zip, bedroomBucket(bedrooms)).First(&row).Error
	if err != nil {
		return 0, false
	}
	return row.MonthlyRent, true
}
