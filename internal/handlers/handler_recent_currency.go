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

// recentCurrencyHandler handles the per-user recently-used currency list.
type recentCurrencyHandler struct {
	recentCurrencyService portssvc.RecentCurrencySvcFacade
}

func newRecentCurrencyHandler(rs portssvc.RecentCurrencySvcFacade) *recentCurrencyHandler {
	return &recentCurrencyHandler{recentCurrencyService: rs}
}

// registerRecentCurrencyRoutes registers routes for the MRU currency tracker.
func registerRecentCurrencyRoutes(rg *gin.RouterGroup, recentCurrencyService portssvc.RecentCurrencySvcFacade) {
	h := newRecentCurrencyHandler(recentCurrencyService)

	currencies := rg.Group("/recent-currencies")
	{
		currencies.GET("", h.listRecentCurrencies)
		currencies.POST("", h.recordCurrencyUse)
	}
}

// listRecentCurrencies godoc
// @Summary List recently used currencies
// @Description Returns the caller's recently used currency codes, most recent first.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.RecentCurrenciesResponse
// @Security BearerAuth
// @Router /recent-currencies [get]
func (h *recentCurrencyHandler) listRecentCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currencies, err := h.recentCurrencyService.ListRecentCurrencies(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list recent currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent currencies"})
		return
	}
	c.JSON(http.StatusOK, dto.RecentCurrenciesResponse{Currencies: currencies})
}

// recordCurrencyUse godoc
// @Summary Record a currency use
// @Description Moves a currency code to the front of the caller's recently-used list.
// @Tags currencies
// @Accept json
// @Param currency body dto.RecordCurrencyUseRequest true "Currency code"
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Security BearerAuth
// @Router /recent-currencies [post]
func (h *recentCurrencyHandler) recordCurrencyUse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordCurrencyUseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.recentCurrencyService.RecordCurrencyUse(c.Request.Context(), userID, req.Code); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record currency use", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record currency use"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
