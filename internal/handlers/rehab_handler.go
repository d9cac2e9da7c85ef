package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/models"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/rehab"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
)

// RehabHandler handles condition report and rehab costing requests.
type RehabHandler struct {
	rehabService services.RehabServicer
}

// NewRehabHandler creates a new RehabHandler.
func NewRehabHandler(rehabService services.RehabServicer) *RehabHandler {
	return &RehabHandler{rehabService: rehabService}
}

// BathroomConditionRequest is one bathroom's assessment in the report payload.
type BathroomConditionRequest struct {
	Overall  models.Grade `json:"overall" binding:"omitempty,condition_grade"`
	Fixtures models.Grade `json:"fixtures" binding:"omitempty,condition_grade"`
	Tile     models.Grade `json:"tile" binding:"omitempty,condition_grade"`
}

// BedroomConditionRequest is one bedroom's assessment in the report payload.
type BedroomConditionRequest struct {
	Overall models.Grade `json:"overall" binding:"omitempty,condition_grade"`
}

// ConditionReportRequest represents the walk-through assessment payload.
// Every grade is optional; an omitted category is simply not scored.
type ConditionReportRequest struct {
	Overall models.Grade `json:"overall" binding:"omitempty,condition_grade"`

	Roof       models.Grade `json:"roof" binding:"omitempty,condition_grade"`
	Foundation models.Grade `json:"foundation" binding:"omitempty,condition_grade"`
	HVAC       models.Grade `json:"hvac" binding:"omitempty,condition_grade"`
	Plumbing   models.Grade `json:"plumbing" binding:"omitempty,condition_grade"`
	Electrical models.Grade `json:"electrical" binding:"omitempty,condition_grade"`

	PlumbingLeaks     bool `json:"plumbing_leaks"`
	PolybutylenePipes bool `json:"polybutylene_pipes"`
	KnobAndTubeWiring bool `json:"knob_and_tube_wiring"`

	Siding      models.Grade `json:"siding" binding:"omitempty,condition_grade"`
	Windows     models.Grade `json:"windows" binding:"omitempty,condition_grade"`
	Doors       models.Grade `json:"doors" binding:"omitempty,condition_grade"`
	Gutters     models.Grade `json:"gutters" binding:"omitempty,condition_grade"`
	Landscaping models.Grade `json:"landscaping" binding:"omitempty,condition_grade"`
	Driveway    models.Grade `json:"driveway" binding:"omitempty,condition_grade"`
	Fencing     models.Grade `json:"fencing" binding:"omitempty,condition_grade"`

	Kitchen            models.Grade               `json:"kitchen" binding:"omitempty,condition_grade"`
	KitchenCabinets    models.Grade               `json:"kitchen_cabinets" binding:"omitempty,condition_grade"`
	KitchenCountertops models.Grade               `json:"kitchen_countertops" binding:"omitempty,condition_grade"`
	KitchenAppliances  models.Grade               `json:"kitchen_appliances" binding:"omitempty,condition_grade"`
	Bathrooms          []BathroomConditionRequest `json:"bathrooms" binding:"omitempty,dive"`
	Bedrooms           []BedroomConditionRequest  `json:"bedrooms" binding:"omitempty,dive"`
	InteriorGeneral    models.Grade               `json:"interior_general" binding:"omitempty,condition_grade"`

	Mold             bool   `json:"mold"`
	Termites         bool   `json:"termites"`
	WaterDamage      bool   `json:"water_damage"`
	FireDamage       bool   `json:"fire_damage"`
	StructuralIssues bool   `json:"structural_issues"`
	CodeViolations   bool   `json:"code_violations"`
	OtherIssues      string `json:"other_issues" binding:"max=2000"`

	HasPool       bool         `json:"has_pool"`
	PoolCondition models.Grade `json:"pool_condition" binding:"omitempty,condition_grade"`
}

func (r *ConditionReportRequest) toModel() models.ConditionReport {
	bathrooms := make([]models.BathroomCondition, 0, len(r.Bathrooms))
	for _, b := range r.Bathrooms {
		bathrooms = append(bathrooms, models.BathroomCondition{
			Overall:  b.Overall,
			Fixtures: b.Fixtures,
			Tile:     b.Tile,
		})
	}
	bedrooms := make([]models.BedroomCondition, 0, len(r.Bedrooms))
	for _, b := range r.Bedrooms {
		bedrooms = append(bedrooms, models.BedroomCondition{Overall: b.Overall})
	}

	return models.ConditionReport{
		Overall:            r.Overall,
		Roof:               r.Roof,
		Foundation:         r.Foundation,
		HVAC:               r.HVAC,
		Plumbing:           r.Plumbing,
		Electrical:         r.Electrical,
		PlumbingLeaks:      r.PlumbingLeaks,
		PolybutylenePipes:  r.PolybutylenePipes,
		KnobAndTubeWiring:  r.KnobAndTubeWiring,
		Siding:             r.Siding,
		Windows:            r.Windows,
		Doors:              r.Doors,
		Gutters:            r.Gutters,
		Landscaping:        r.Landscaping,
		Driveway:           r.Driveway,
		Fencing:            r.Fencing,
		Kitchen:            r.Kitchen,
		KitchenCabinets:    r.KitchenCabinets,
		KitchenCountertops: r.KitchenCountertops,
		KitchenAppliances:  r.KitchenAppliances,
		Bathrooms:          bathrooms,
		Bedrooms:           bedrooms,
		InteriorGeneral:    r.InteriorGeneral,
		Mold:               r.Mold,
		Termites:           r.Termites,
		WaterDamage:        r.WaterDamage,
		FireDamage:         r.FireDamage,
		StructuralIssues:   r.StructuralIssues,
		CodeViolations:     r.CodeViolations,
		OtherIssues:        r.OtherIssues,
		HasPool:            r.HasPool,
		PoolCondition:      r.PoolCondition,
	}
}

// EstimateRequest represents the request payload for pricing a chosen tier.
type EstimateRequest struct {
	Sqft      int        `json:"sqft" binding:"required,min=1"`
	UnitCount int        `json:"unit_count" binding:"min=0"`
	Tier      rehab.Tier `json:"tier" binding:"required,rehab_tier"`
}

// CapitalRequest represents the request payload for the bridge capital stack.
type CapitalRequest struct {
	HardCost       float64 `json:"hard_cost" binding:"required,gt=0"`
	EntryPointsPct float64 `json:"entry_points_pct" binding:"min=0"`
	AnnualRatePct  float64 `json:"annual_rate_pct" binding:"min=0"`
	Months         int     `json:"months" binding:"min=0"`
	ExitPointsPct  float64 `json:"exit_points_pct" binding:"min=0"`
}

// UpsertConditionReport stores the walk-through assessment for a property.
// @Summary     Upsert condition report
// @Description Create or replace the property's structured walk-through assessment
// @Tags        rehab
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Param       request body ConditionReportRequest true "Condition report"
// @Success     200 {object} models.ConditionReport "Condition report stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/condition [put]
func (h *RehabHandler) UpsertConditionReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ConditionReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.rehabService.UpsertConditionReport(userID, propertyID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"condition_report": report})
}

// GetConditionReport returns the stored report for a property.
// @Summary     Get condition report
// @Description Get the property's stored walk-through assessment
// @Tags        rehab
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.ConditionReport "Condition report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Router      /properties/{id}/condition [get]
func (h *RehabHandler) GetConditionReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.rehabService.GetConditionReport(userID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"condition_report": report})
}

// ScoreProperty scores the stored report and prices the suggested tier.
// @Summary     Score a property's condition
// @Description Score the stored condition report, suggest a rehab tier, and price it against the property
// @Tags        rehab
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} services.RehabEstimate "Score and estimate"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Router      /properties/{id}/condition/score [get]
func (h *RehabHandler) ScoreProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	estimate, err := h.rehabService.ScoreProperty(userID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// EstimateCost prices an explicitly chosen tier for an arbitrary building.
// @Summary     Estimate rehab cost
// @Description Price a chosen rehab tier for a building by square footage and unit count
// @Tags        rehab
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body EstimateRequest true "Building and tier"
// @Success     200 {object} map[string]float64 "Estimated cost"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /rehab/estimate [post]
func (h *RehabHandler) EstimateCost(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cost, err := h.rehabService.EstimateCost(req.Sqft, req.UnitCount, req.Tier)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tier":           req.Tier,
		"estimated_cost": cost,
		"unit_bucket":    rehab.UnitBucket(req.UnitCount),
	})
}

// CapitalNeeded computes the bridge-financing capital stack.
// @Summary     Compute rehab capital
// @Description Compute total capital needed for a rehab: hard cost, entry and exit points, and carry interest
// @Tags        rehab
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CapitalRequest true "Bridge loan terms"
// @Success     200 {object} rehab.CapitalBreakdown "Capital breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /rehab/capital [post]
func (h *RehabHandler) CapitalNeeded(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req CapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	breakdown := h.rehabService.CapitalNeeded(req.HardCost, req.EntryPointsPct, req.AnnualRatePct, req.Months, req.ExitPointsPct)
	c.JSON(http.StatusOK, breakdown)
}
