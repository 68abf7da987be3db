package services

import (
	"context"
	"fmt"

	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements GoogleOAuthSvcFacade using the authorization
// code flow plus Google ID token validation.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForIDToken exchanges an authorization code for the Google-issued
// ID token string.
func (s *googleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("oauth token response did not include an id_token")
	}
	return rawIDToken, nil
}

// ValidateIDToken validates a Google ID token and returns the verified email.
func (s *googleOAuthService) ValidateIDToken(ctx context.Context, idTokenStr string) (string, error) {
	payload, err := idtoken.Validate(ctx, idTokenStr, s.cfg.GoogleClientID)
	if err != nil {
		return "", fmt.Errorf("failed to validate id token: %w", err)
	}
	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("id token missing email claim")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return "", fmt.Errorf("google account email is not verified")
	}
	return email, nil
}
