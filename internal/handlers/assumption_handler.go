package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
)

// AssumptionHandler handles assumption-set and voucher-rent requests.
type AssumptionHandler struct {
	assumptionService services.AssumptionServicer
}

// NewAssumptionHandler creates a new AssumptionHandler.
func NewAssumptionHandler(assumptionService services.AssumptionServicer) *AssumptionHandler {
	return &AssumptionHandler{assumptionService: assumptionService}
}

// UpdateAssumptionsRequest represents the request payload for updating the
// assumption set. Omitted fields are left unchanged.
type UpdateAssumptionsRequest struct {
	VacancyMonthsLTR          *float64 `json:"vacancy_months_ltr" binding:"omitempty,min=0,max=12"`
	VacancyMonthsVoucher      *float64 `json:"vacancy_months_voucher" binding:"omitempty,min=0,max=12"`
	MaintenancePctOfIncome    *float64 `json:"maintenance_pct_of_income" binding:"omitempty,min=0,max=100"`
	RentGrowthPct             *float64 `json:"rent_growth_pct" binding:"omitempty,min=-100,max=100"`
	AppreciationPct           *float64 `json:"appreciation_pct" binding:"omitempty,min=-100,max=100"`
	TaxEscalationPct          *float64 `json:"tax_escalation_pct" binding:"omitempty,min=-100,max=100"`
	InsuranceEscalationPct    *float64 `json:"insurance_escalation_pct" binding:"omitempty,min=-100,max=100"`
	VoucherFallbackMultiplier *float64 `json:"voucher_fallback_multiplier" binding:"omitempty,gt=0"`
}

// VoucherRentRequest represents the request payload for a voucher rent
// ceiling row.
type VoucherRentRequest struct {
	ZIP         string  `json:"zip" binding:"required,zip5"`
	Bedrooms    int     `json:"bedrooms" binding:"min=0"`
	Zone        string  `json:"zone" binding:"max=100"`
	MonthlyRent float64 `json:"monthly_rent" binding:"required,gt=0"`
}

// GetAssumptions returns the user's assumption set.
// @Summary     Get assumptions
// @Description Get the user's projection assumption set, seeding defaults on first access
// @Tags        assumptions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AssumptionSet "Assumption set"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assumptions [get]
func (h *AssumptionHandler) GetAssumptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	set, err := h.assumptionService.GetAssumptions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assumptions": set})
}

// UpdateAssumptions partially updates the user's assumption set.
// @Summary     Update assumptions
// @Description Update fields of the user's projection assumption set
// @Tags        assumptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateAssumptionsRequest true "Fields to update"
// @Success     200 {object} models.AssumptionSet "Updated assumption set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assumptions [patch]
func (h *AssumptionHandler) UpdateAssumptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssumptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	set, err := h.assumptionService.UpdateAssumptions(userID, services.AssumptionUpdate{
		VacancyMonthsLTR:          req.VacancyMonthsLTR,
		VacancyMonthsVoucher:      req.VacancyMonthsVoucher,
		MaintenancePctOfIncome:    req.MaintenancePctOfIncome,
		RentGrowthPct:             req.RentGrowthPct,
		AppreciationPct:           req.AppreciationPct,
		TaxEscalationPct:          req.TaxEscalationPct,
		InsuranceEscalationPct:    req.InsuranceEscalationPct,
		VoucherFallbackMultiplier: req.VoucherFallbackMultiplier,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assumptions": set})
}

// ResetAssumptions restores the user's assumption set to defaults.
// @Summary     Reset assumptions
// @Description Restore every assumption to its default value
// @Tags        assumptions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AssumptionSet "Reset assumption set"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assumptions/reset [post]
func (h *AssumptionHandler) ResetAssumptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	set, err := h.assumptionService.ResetAssumptions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assumptions": set})
}

// UpsertVoucherRent creates or updates a voucher rent ceiling row.
// @Summary     Upsert voucher rent
// @Description Create or update the voucher rent ceiling for a ZIP and bedroom bucket
// @Tags        assumptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body VoucherRentRequest true "Voucher rent row"
// @Success     200 {object} models.VoucherRent "Voucher rent row"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /voucher-rents [put]
func (h *AssumptionHandler) UpsertVoucherRent(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req VoucherRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	row, err := h.assumptionService.UpsertVoucherRent(req.ZIP, req.Bedrooms, req.Zone, req.MonthlyRent)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"voucher_rent": row})
}

// ListVoucherRents returns a paginated view of the voucher rent table.
// @Summary     List voucher rents
// @Description Get a paginated list of voucher rent ceilings ordered by ZIP and bedrooms
// @Tags        assumptions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.VoucherRent] "Voucher rents"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /voucher-rents [get]
func (h *AssumptionHandler) ListVoucherRents(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assumptionService.ListVoucherRents(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
