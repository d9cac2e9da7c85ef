package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
)

// propertyService handles acquisition-scenario CRUD.
type propertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(db *gorm.DB) PropertyServicer {
	return &propertyService{db: db}
}

// applyInput copies every scenario field onto the model.
func applyInput(p *models.Property, input PropertyInput) {
	p.Address = input.Address
	p.ZIP = input.ZIP
	p.YearBuilt = input.YearBuilt
	p.UnitCount = input.UnitCount
	p.Units = input.Units
	p.TotalSqft = input.TotalSqft
	p.PurchasePrice = input.PurchasePrice
	p.AcquisitionCostPct = input.AcquisitionCostPct
	p.AcquisitionCostAmt = input.AcquisitionCostAmt
	p.DownPaymentPct = input.DownPaymentPct
	p.LoanRatePct = input.LoanRatePct
	p.LoanTermYears = input.LoanTermYears
	p.AnnualPropertyTax = input.AnnualPropertyTax
	p.AnnualInsurance = input.AnnualInsurance
	p.FurnishCost = input.FurnishCost
	p.Rehab = input.Rehab
	p.RehabCost = input.RehabCost
	p.RehabMonths = input.RehabMonths
	p.RehabRatePct = input.RehabRatePct
	p.RehabEntryPointsPct = input.RehabEntryPointsPct
	p.RehabExitPointsPct = input.RehabExitPointsPct
	p.AfterRepairValue = input.AfterRepairValue
	p.ExitStrategy = input.ExitStrategy
	p.RefinanceLTVPct = input.RefinanceLTVPct
	p.RefinanceRatePct = input.RefinanceRatePct
}

// validateInput runs the projection engine's own validation so a property
// that saves is a property that projects.
func validateInput(input PropertyInput) error {
	probe := &models.Property{}
	applyInput(probe, input)
	if err := finance.ValidateInputs(probe.FinanceInputs()); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// CreateProperty validates and stores a new acquisition scenario.
func (s *propertyService) CreateProperty(userID uint, input PropertyInput) (*models.Property, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	property := &models.Property{UserID: userID}
	applyInput(property, input)

	if err := s.db.Create(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return property, nil
}

// GetUserProperties returns a paginated list of the user's properties.
func (s *propertyService) GetUserProperties(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Property{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var properties []models.Property
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(properties, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPropertyByID returns a property if it belongs to the user.
func (s *propertyService) GetPropertyByID(userID, propertyID uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.Preload("ConditionReport").First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if property.UserID != userID {
		return nil, apperrors.ErrPropertyNotFound
	}
	return &property, nil
}

// UpdateProperty replaces the stored scenario with the new inputs.
func (s *propertyService) UpdateProperty(userID, propertyID uint, input PropertyInput) (*models.Property, error) {
	property, err := s.GetPropertyByID(userID, propertyID)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	applyInput(property, input)
	if err := s.db.Save(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return property, nil
}

// DeleteProperty soft-deletes a property along with its condition report and
// analysis snapshots.
func (s *propertyService) DeleteProperty(userID, propertyID uint) error {
	property, err := s.GetPropertyByID(userID, propertyID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.ConditionReport{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.AnalysisSnapshot{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(property).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
