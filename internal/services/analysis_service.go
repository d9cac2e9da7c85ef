package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/uuid"
)

// analysisService runs the projection engine over stored properties and
// persists the results as snapshots.
type analysisService struct {
	db                *gorm.DB
	propertyService   PropertyServicer
	assumptionService AssumptionServicer
}

// NewAnalysisService creates a new AnalysisServicer.
func NewAnalysisService(db *gorm.DB, propertyService PropertyServicer, assumptionService AssumptionServicer) AnalysisServicer {
	return &analysisService{
		db:                db,
		propertyService:   propertyService,
		assumptionService: assumptionService,
	}
}

// validStrategy reports whether the strategy is one of the supported three.
func validStrategy(strategy finance.Strategy) bool {
	switch strategy {
	case finance.StrategyLongTerm, finance.StrategyVoucher, finance.StrategyShortTerm:
		return true
	}
	return false
}

// AnalyzeProperty projects the given strategies (all three when none are
// named) and persists one snapshot per strategy. Projection is deterministic
// and side-effect-free, so re-analyzing simply appends fresh snapshots.
func (s *analysisService) AnalyzeProperty(userID, propertyID uint, strategies []finance.Strategy) ([]models.AnalysisSnapshot, error) {
	property, err := s.propertyService.GetPropertyByID(userID, propertyID)
	if err != nil {
		return nil, err
	}

	assumptionSet, err := s.assumptionService.GetAssumptions(userID)
	if err != nil {
		return nil, err
	}

	if len(strategies) == 0 {
		strategies = finance.Strategies
	}
	for _, strategy := range strategies {
		if !validStrategy(strategy) {
			return nil, apperrors.ErrInvalidStrategy
		}
	}

	inputs := property.FinanceInputs()
	assumptions := assumptionSet.FinanceAssumptions()

	snapshots := make([]models.AnalysisSnapshot, 0, len(strategies))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, strategy := range strategies {
			result, projErr := finance.Project(strategy, inputs, assumptions, s.assumptionService)
			if projErr != nil {
				return apperrors.WithMessage(apperrors.ErrInvalidProjection, projErr.Error())
			}

			snapshot := models.AnalysisSnapshot{
				UserID:             userID,
				PropertyID:         propertyID,
				Ref:                uuid.New(),
				Strategy:           string(strategy),
				Result:             *result,
				AssumptionsVersion: assumptionSet.UpdatedAt,
			}
			if txErr := tx.Create(&snapshot).Error; txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
			snapshots = append(snapshots, snapshot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshots, nil
}

// MaxOffer solves backward for the highest purchase price whose year-one
// DSCR meets the target under the given strategy.
func (s *analysisService) MaxOffer(userID, propertyID uint, strategy finance.Strategy, targetDSCR float64) (float64, error) {
	if !validStrategy(strategy) {
		return 0, apperrors.ErrInvalidStrategy
	}

	property, err := s.propertyService.GetPropertyByID(userID, propertyID)
	if err != nil {
		return 0, err
	}

	assumptionSet, err := s.assumptionService.GetAssumptions(userID)
	if err != nil {
		return 0, err
	}

	offer, err := finance.MaxOfferForDSCR(strategy, property.FinanceInputs(), assumptionSet.FinanceAssumptions(), s.assumptionService, targetDSCR)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidTargetDSCR) {
			return 0, apperrors.ErrInvalidTargetDSCR
		}
		return 0, apperrors.WithMessage(apperrors.ErrInvalidProjection, err.Error())
	}
	return offer, nil
}

// GetSnapshots returns a paginated history of snapshots for a property,
// newest first.
func (s *analysisService) GetSnapshots(userID, propertyID uint, page pagination.PageRequest) (*pagination.PageResponse[models.AnalysisSnapshot], error) {
	if _, err := s.propertyService.GetPropertyByID(userID, propertyID); err != nil {
		return nil, err
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.AnalysisSnapshot{}).Where("property_id = ?", propertyID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.AnalysisSnapshot
	if err := s.db.Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSnapshotByRef returns a snapshot by its UUID reference if the user
// owns it.
func (s *analysisService) GetSnapshotByRef(userID uint, ref string) (*models.AnalysisSnapshot, error) {
	if !uuid.IsValid(ref) {
		return nil, apperrors.ErrSnapshotNotFound
	}

	var snapshot models.AnalysisSnapshot
	if err := s.db.Where("ref = ?", ref).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if snapshot.UserID != userID {
		return nil, apperrors.ErrSnapshotNotFound
	}
	return &snapshot, nil
}
