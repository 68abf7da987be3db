package services

import (
	"context"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a specific user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash and expiry of a refresh token.
	StoreRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes any stored refresh token for the user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc

	// AuthenticateUser verifies a username/password pair and returns the
	// user, or apperrors.ErrUnauthorized when either is wrong.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade handles access and refresh token lifecycle.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a raw refresh token, stores its hash and
	// returns the raw token with its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken validates a raw refresh token for the user and
	// returns the user when it matches the stored hash and is unexpired.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade is the optional Google sign-in collaborator.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForIDToken exchanges an authorization code for the
	// Google-issued ID token string.
	ExchangeCodeForIDToken(ctx context.Context, code string) (string, error)

	// ValidateIDToken validates a Google ID token and returns the verified
	// email address.
	ValidateIDToken(ctx context.Context, idToken string) (string, error)
}
