package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/errors"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/pagination"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
)

// AnalysisHandler handles projection and snapshot requests.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeRequest represents the request payload for running projections.
// An empty strategy list means all three strategies.
type AnalyzeRequest struct {
	Strategies []finance.Strategy `json:"strategies" binding:"omitempty,dive,strategy"`
}

// MaxOfferRequest represents the request payload for the offer solver.
type MaxOfferRequest struct {
	Strategy   finance.Strategy `json:"strategy" binding:"required,strategy"`
	TargetDSCR float64          `json:"target_dscr" binding:"required,min=1"`
}

// AnalyzeProperty runs projections for a property and persists snapshots.
// @Summary     Analyze a property
// @Description Run deterministic 30-year projections for the requested strategies and save one snapshot per strategy
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Param       request body AnalyzeRequest true "Strategies to project (empty for all)"
// @Success     201 {array} models.AnalysisSnapshot "Snapshots created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/analyze [post]
func (h *AnalysisHandler) AnalyzeProperty(c *gin.Context) {
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

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshots, err := h.analysisService.AnalyzeProperty(userID, propertyID, req.Strategies)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshots": snapshots})
}

// MaxOffer solves for the highest purchase price meeting a target DSCR.
// @Summary     Solve maximum offer
// @Description Solve backward for the highest purchase price whose year-one DSCR meets the target, rounded down to the nearest $500
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Param       request body MaxOfferRequest true "Strategy and target DSCR"
// @Success     200 {object} map[string]float64 "Maximum offer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/max-offer [post]
func (h *AnalysisHandler) MaxOffer(c *gin.Context) {
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

	var req MaxOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	offer, err := h.analysisService.MaxOffer(userID, propertyID, req.Strategy, req.TargetDSCR)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"strategy":    req.Strategy,
		"target_dscr": req.TargetDSCR,
		"max_offer":   offer,
	})
}

// GetSnapshots lists a property's analysis snapshots, newest first.
// @Summary     List snapshots
// @Description Get a paginated history of analysis snapshots for a property
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.AnalysisSnapshot] "Snapshots"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/snapshots [get]
func (h *AnalysisHandler) GetSnapshots(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.analysisService.GetSnapshots(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSnapshot returns a single snapshot by its UUID reference.
// @Summary     Get a snapshot
// @Description Get an analysis snapshot by its reference
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       ref path string true "Snapshot reference"
// @Success     200 {object} models.AnalysisSnapshot "Snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Snapshot not found"
// @Router      /snapshots/{ref} [get]
func (h *AnalysisHandler) GetSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.analysisService.GetSnapshotByRef(userID, c.Param("ref"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

// ExportSnapshot streams a snapshot's year-by-year projection as CSV.
// @Summary     Export a snapshot
// @Description Download the 30-year projection series of a snapshot as a CSV file
// @Tags        analysis
// @Produce     text/csv
// @Security    BearerAuth
// @Param       ref path string true "Snapshot reference"
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Snapshot not found"
// @Router      /snapshots/{ref}/export [get]
func (h *AnalysisHandler) ExportSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.analysisService.GetSnapshotByRef(userID, c.Param("ref"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("projection-%s-%s.csv", snapshot.Strategy, snapshot.Ref)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	header := []string{
		"year", "gross_income", "noi", "debt_service", "cash_flow",
		"appreciation", "property_value", "equity", "annual_return",
		"cumulative_cash_flow", "cumulative_return", "loan_balance",
	}
	if err := w.Write(header); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	for _, row := range snapshot.Result.Projections {
		record := []string{
			strconv.Itoa(row.Year),
			dollars(row.GrossIncome),
			dollars(row.NOI),
			dollars(row.DebtService),
			dollars(row.CashFlow),
			dollars(row.Appreciation),
			dollars(row.PropertyValue),
			dollars(row.Equity),
			dollars(row.AnnualReturn),
			dollars(row.CumulativeCashFlow),
			dollars(row.CumulativeReturn),
			dollars(row.LoanBalance),
		}
		if err := w.Write(record); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}
	w.Flush()
}

// dollars formats a monetary figure with two decimal places for CSV export.
func dollars(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
