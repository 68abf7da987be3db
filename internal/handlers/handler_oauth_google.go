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

// googleOAuthHandler handles the Google sign-in code exchange.
type googleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{oauthService: os, userService: us, tokenService: ts}
}

// registerGoogleOAuthRoutes registers the Google sign-in route. Skipped when
// Google OAuth is not configured.
func registerGoogleOAuthRoutes(public *gin.RouterGroup, oauthService portssvc.GoogleOAuthSvcFacade, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade) {
	h := newGoogleOAuthHandler(oauthService, userService, tokenService)
	public.POST("/auth/google/exchange-code", h.exchangeCode)
}

// exchangeCode godoc
// @Summary Log in with a Google authorization code
// @Description Exchanges a Google OAuth authorization code for a token pair. The verified Google email must match an existing user; no account is created.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Unknown or unverified Google account"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	idToken, err := h.oauthService.ExchangeCodeForIDToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	email, err := h.oauthService.ValidateIDToken(c.Request.Context(), idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No account for this Google user"})
		} else {
			logger.Error("Failed to load user for Google sign-in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	logger.Info("User logged in via Google", slog.String("username", user.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}
