package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/rehab"
)

// rehabService manages condition reports and runs the condition-to-cost
// pipeline over them.
type rehabService struct {
	db              *gorm.DB
	propertyService PropertyServicer
}

// NewRehabService creates a new RehabServicer.
func NewRehabService(db *gorm.DB, propertyService PropertyServicer) RehabServicer {
	return &rehabService{db: db, propertyService: propertyService}
}

// UpsertConditionReport stores the walk-through assessment for a property,
// replacing any previous report. One report exists per property.
func (s *rehabService) UpsertConditionReport(userID, propertyID uint, report models.ConditionReport) (*models.ConditionReport, error) {
	if _, err := s.propertyService.GetPropertyByID(userID, propertyID); err != nil {
		return nil, err
	}

	var existing models.ConditionReport
	err := s.db.Where("property_id = ?", propertyID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		report.Base = models.Base{}
		report.PropertyID = propertyID
		if err := s.db.Create(&report).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &report, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report.Base = existing.Base
	report.PropertyID = propertyID
	if err := s.db.Save(&report).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &report, nil
}

// GetConditionReport returns the stored report for a property.
func (s *rehabService) GetConditionReport(userID, propertyID uint) (*models.ConditionReport, error) {
	if _, err := s.propertyService.GetPropertyByID(userID, propertyID); err != nil {
		return nil, err
	}

	var report models.ConditionReport
	if err := s.db.Where("property_id = ?", propertyID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &report, nil
}

// ScoreProperty scores the stored condition report and prices the suggested
// tier against the property's square footage and unit count.
func (s *rehabService) ScoreProperty(userID, propertyID uint) (*RehabEstimate, error) {
	property, err := s.propertyService.GetPropertyByID(userID, propertyID)
	if err != nil {
		return nil, err
	}

	report, err := s.GetConditionReport(userID, propertyID)
	if err != nil {
		return nil, err
	}

	scored := rehab.Score(report, property.UnitCount)

	return &RehabEstimate{
		EstimatedCost:  rehab.Estimate(property.TotalSqft, property.UnitCount, scored.Tier),
		SuggestedTier:  scored.Tier,
		ConditionScore: scored.Score,
		MajorIssues:    scored.MajorIssues,
		Breakdown:      scored.Breakdown,
		UnitBucket:     rehab.UnitBucket(property.UnitCount),
	}, nil
}

// EstimateCost prices an explicitly chosen tier for an arbitrary building.
func (s *rehabService) EstimateCost(sqft, unitCount int, tier rehab.Tier) (float64, error) {
	switch tier {
	case rehab.TierLight, rehab.TierLitePlus, rehab.TierMedium, rehab.TierHeavy, rehab.TierFullGut:
	default:
		return 0, apperrors.ErrInvalidRehabTier
	}
	if sqft <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "square footage must be positive")
	}
	return rehab.Estimate(sqft, unitCount, tier), nil
}

// CapitalNeeded computes the bridge-financing capital stack.
func (s *rehabService) CapitalNeeded(hardCost, entryPointsPct, annualRatePct float64, months int, exitPointsPct float64) rehab.CapitalBreakdown {
	return rehab.CapitalNeeded(hardCost, entryPointsPct, annualRatePct, months, exitPointsPct)
}
