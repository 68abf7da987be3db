package domain

// Party is one of exactly two settlement counterparties in a deployment.
// Exactly one party carries IsHousehold=true; the other is the counterpart.
type Party struct {
	PartyID     string `json:"partyID"` // Primary Key (UUID)
	Name        string `json:"name"`    // Unique display name
	Slug        string `json:"slug"`    // Unique stable identifier
	IsHousehold bool   `json:"isHousehold"`
	AuditFields
}
