package domain

// Person is a concrete payer belonging to exactly one Party. The party
// attribution of an expense is always derived through the payer's person,
// never stored on the expense itself.
type Person struct {
	PersonID string `json:"personID"` // Primary Key (UUID)
	Name     string `json:"name"`     // Unique within a party
	PartyID  string `json:"partyID"`  // FK -> Party.PartyID
	AuditFields
}
