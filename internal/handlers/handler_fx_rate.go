package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fxRateHandler handles HTTP requests for FX rate lookups.
type fxRateHandler struct {
	fxRateService portssvc.FxRateSvcFacade
	defaultBase   string
	defaultQuote  string
}

func newFxRateHandler(fs portssvc.FxRateSvcFacade, defaultBase, defaultQuote string) *fxRateHandler {
	return &fxRateHandler{fxRateService: fs, defaultBase: defaultBase, defaultQuote: defaultQuote}
}

// registerFxRateRoutes registers the rate lookup route.
func RegisterFxRateRoutes(rg *gin.RouterGroup, fxRateService portssvc.FxRateSvcFacade, defaultBase, defaultQuote string) {
	h := newFxRateHandler(fxRateService, defaultBase, defaultQuote)
	rg.GET("/fx-rate", h.getFxRate)
}

// getFxRate godoc
// @Summary Look up an FX rate
// @Description Returns the rate for a (date, base, quote) triple. Cached rates are served directly; misses are fetched live and cached. Provider outages yield a fallback rate of 1 with a note, never an error.
// @Tags fx-rates
// @Produce json
// @Param date query string false "Rate date (YYYY-MM-DD), defaults to today"
// @Param base query string false "Base currency code, defaults to the reference currency"
// @Param quote query string false "Quote currency code"
// @Success 200 {object} dto.FxRateResponse
// @Failure 400 {object} map[string]string "Malformed date or currency code"
// @Security BearerAuth
// @Router /fx-rate [get]
func (h *fxRateHandler) getFxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GetFxRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	date := time.Now().UTC()
	if params.Date != "" {
		parsed, err := time.Parse(dto.DateFormat, params.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	base := params.Base
	if base == "" {
		base = h.defaultBase
	}
	quote := params.Quote
	if quote == "" {
		quote = h.defaultQuote
	}

	rate, err := h.fxRateService.GetRate(c.Request.Context(), date, base, quote)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to look up FX rate", slog.String("base", base), slog.String("quote", quote), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up FX rate"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRateResponse(rate))
}
