package models

import "time"

// User maps to the users table.
type User struct {
	UserID                 string     `json:"userID"`
	Username               string     `json:"username"`
	PasswordHash           string     `json:"-"`
	Role                   string     `json:"role"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
