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

// settlementHandler handles HTTP requests related to settlements.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers routes related to settlements.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade, requireEditor gin.HandlerFunc) {
	h := newSettlementHandler(settlementService)

	settlements := rg.Group("/settlements")
	{
		settlements.GET("", h.listSettlements)
		settlements.GET("/:settlementID", h.getSettlement)
		settlements.POST("", requireEditor, h.createSettlement)
		settlements.PUT("/:settlementID", requireEditor, h.updateSettlement)
		settlements.DELETE("/:settlementID", requireEditor, h.deleteSettlement)
	}
}

// listSettlements godoc
// @Summary List settlements
// @Tags settlements
// @Produce json
// @Success 200 {array} dto.SettlementResponse
// @Security BearerAuth
// @Router /settlements [get]
func (h *settlementHandler) listSettlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settlements, err := h.settlementService.ListSettlements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list settlements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list settlements"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSettlementResponse(settlements))
}

// getSettlement godoc
// @Summary Get a settlement
// @Tags settlements
// @Produce json
// @Param settlementID path string true "Settlement ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{settlementID} [get]
func (h *settlementHandler) getSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settlementID := c.Param("settlementID")

	settlement, err := h.settlementService.GetSettlementByID(c.Request.Context(), settlementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settlement not found"})
		} else {
			logger.Error("Failed to get settlement", slog.String("settlement_id", settlementID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settlement"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}

// createSettlement godoc
// @Summary Record a settlement
// @Description Records a transfer between the two parties. Sides may be given as party IDs or resolved from person IDs.
// @Tags settlements
// @Accept json
// @Produce json
// @Param settlement body dto.CreateSettlementRequest true "Settlement details"
// @Success 201 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party or person not found"
// @Security BearerAuth
// @Router /settlements [post]
func (h *settlementHandler) createSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settlement, err := h.settlementService.CreateSettlement(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create settlement"})
		}
		return
	}

	logger.Info("Settlement created", slog.String("settlement_id", settlement.SettlementID))
	c.JSON(http.StatusCreated, dto.ToSettlementResponse(settlement))
}

// updateSettlement godoc
// @Summary Update a settlement
// @Tags settlements
// @Accept json
// @Produce json
// @Param settlementID path string true "Settlement ID"
// @Param settlement body dto.UpdateSettlementRequest true "Fields to update"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{settlementID} [put]
func (h *settlementHandler) updateSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settlementID := c.Param("settlementID")

	var req dto.UpdateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settlement, err := h.settlementService.UpdateSettlement(c.Request.Context(), settlementID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settlement not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update settlement", slog.String("settlement_id", settlementID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settlement"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}

// deleteSettlement godoc
// @Summary Delete a settlement
// @Tags settlements
// @Param settlementID path string true "Settlement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{settlementID} [delete]
func (h *settlementHandler) deleteSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settlementID := c.Param("settlementID")

	if err := h.settlementService.DeleteSettlement(c.Request.Context(), settlementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settlement not found"})
		} else {
			logger.Error("Failed to delete settlement", slog.String("settlement_id", settlementID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete settlement"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
