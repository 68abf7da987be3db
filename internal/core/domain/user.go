package domain

import "time"

// UserRole controls write access: editors may mutate ledger entities,
// viewers may only read.
type UserRole string

const (
	RoleViewer UserRole = "viewer"
	RoleEditor UserRole = "editor"
)

// User represents a user of the application in the domain. The core ledger
// treats the user only as an opaque identifier for attribution and the
// recent-currency tracker.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (UUID)
	Username               string     `json:"username"`
	PasswordHash           string     `json:"-"`
	Role                   UserRole   `json:"role"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsEditor reports whether the user holds the editor role.
func (u *User) IsEditor() bool {
	return u.Role == RoleEditor
}
