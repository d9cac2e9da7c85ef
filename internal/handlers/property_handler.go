package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
)

// PropertyHandler handles property-related requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyRequest represents the request payload for creating or updating a
// property scenario.
type PropertyRequest struct {
	Address   string `json:"address" binding:"required,max=255"`
	ZIP       string `json:"zip" binding:"omitempty,zip5"`
	YearBuilt int    `json:"year_built" binding:"omitempty,min=1800,max=2100"`

	UnitCount int            `json:"unit_count" binding:"required,min=1"`
	Units     []finance.Unit `json:"units" binding:"required,min=1,dive"`
	TotalSqft int            `json:"total_sqft" binding:"omitempty,min=1"`

	PurchasePrice      float64 `json:"purchase_price" binding:"required,gt=0"`
	AcquisitionCostPct float64 `json:"acquisition_cost_pct" binding:"min=0"`
	AcquisitionCostAmt float64 `json:"acquisition_cost_amt" binding:"min=0"`
	DownPaymentPct     float64 `json:"down_payment_pct" binding:"min=0,max=100"`
	LoanRatePct        float64 `json:"loan_rate_pct" binding:"min=0"`
	LoanTermYears      int     `json:"loan_term_years" binding:"omitempty,min=1,max=40"`

	AnnualPropertyTax float64 `json:"annual_property_tax" binding:"min=0"`
	AnnualInsurance   float64 `json:"annual_insurance" binding:"min=0"`
	FurnishCost       float64 `json:"furnish_cost" binding:"min=0"`

	Rehab               bool    `json:"rehab"`
	RehabCost           float64 `json:"rehab_cost" binding:"min=0"`
	RehabMonths         int     `json:"rehab_months" binding:"min=0"`
	RehabRatePct        float64 `json:"rehab_rate_pct" binding:"min=0"`
	RehabEntryPointsPct float64 `json:"rehab_entry_points_pct" binding:"min=0"`
	RehabExitPointsPct  float64 `json:"rehab_exit_points_pct" binding:"min=0"`
	AfterRepairValue    float64 `json:"after_repair_value" binding:"min=0"`
	ExitStrategy        string  `json:"exit_strategy" binding:"omitempty,exit_strategy"`
	RefinanceLTVPct     float64 `json:"refinance_ltv_pct" binding:"min=0,max=100"`
	RefinanceRatePct    float64 `json:"refinance_rate_pct" binding:"min=0"`
}

func (r *PropertyRequest) toInput() services.PropertyInput {
	return services.PropertyInput{
		Address:             r.Address,
		ZIP:                 r.ZIP,
		YearBuilt:           r.YearBuilt,
		UnitCount:           r.UnitCount,
		Units:               r.Units,
		TotalSqft:           r.TotalSqft,
		PurchasePrice:       r.PurchasePrice,
		AcquisitionCostPct:  r.AcquisitionCostPct,
		AcquisitionCostAmt:  r.AcquisitionCostAmt,
		DownPaymentPct:      r.DownPaymentPct,
		LoanRatePct:         r.LoanRatePct,
		LoanTermYears:       r.LoanTermYears,
		AnnualPropertyTax:   r.AnnualPropertyTax,
		AnnualInsurance:     r.AnnualInsurance,
		FurnishCost:         r.FurnishCost,
		Rehab:               r.Rehab,
		RehabCost:           r.RehabCost,
		RehabMonths:         r.RehabMonths,
		RehabRatePct:        r.RehabRatePct,
		RehabEntryPointsPct: r.RehabEntryPointsPct,
		RehabExitPointsPct:  r.RehabExitPointsPct,
		AfterRepairValue:    r.AfterRepairValue,
		ExitStrategy:        r.ExitStrategy,
		RefinanceLTVPct:     r.RefinanceLTVPct,
		RefinanceRatePct:    r.RefinanceRatePct,
	}
}

// CreateProperty handles the creation of a new property scenario.
// @Summary     Create a property
// @Description Create a new acquisition scenario for analysis
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PropertyRequest true "Property details"
// @Success     201 {object} models.Property "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.CreateProperty(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// GetProperties lists the user's property scenarios.
// @Summary     List properties
// @Description Get a paginated list of the user's property scenarios
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.Property] "Properties"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.propertyService.GetUserProperties(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProperty returns a single property scenario.
// @Summary     Get a property
// @Description Get a property scenario by ID
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.Property "Property"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
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

	property, err := h.propertyService.GetPropertyByID(userID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// UpdateProperty replaces a property scenario.
// @Summary     Update a property
// @Description Update a property scenario by ID
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Param       request body PropertyRequest true "Property details"
// @Success     200 {object} models.Property "Property updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
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

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.UpdateProperty(userID, propertyID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty removes a property scenario and its dependent records.
// @Summary     Delete a property
// @Description Delete a property scenario along with its condition report and snapshots
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} map[string]string "Property deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
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

	if err := h.propertyService.DeleteProperty(userID, propertyID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
