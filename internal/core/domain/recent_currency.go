package domain

import "time"

// RecentCurrency tracks a user's most recently used currency codes. The five
// freshest codes are surfaced to the UI; this plays no part in balance math.
type RecentCurrency struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userID"`
	Code      string    `json:"code"` // ISO 4217, uppercase
	UpdatedAt time.Time `json:"updatedAt"`
}
