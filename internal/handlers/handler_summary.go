package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ckeeling/splitledger/internal/apperrors"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler handles the balance summary endpoint.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers the balance summary route.
func RegisterSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the balance summary
// @Description Recomputes who owes whom from all persisted expenses and settlements. All figures are CAD amounts with two decimal places.
// @Tags summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Ledger parties not set up yet"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotBootstrapped) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
