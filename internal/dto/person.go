package dto

import (
	"github.com/ckeeling/splitledger/internal/core/domain"
)

// CreatePersonRequest defines the data needed to create a new person.
type CreatePersonRequest struct {
	Name    string `json:"name" binding:"required,max=64"`
	PartyID string `json:"partyID" binding:"required"`
}

// UpdatePersonRequest defines the updatable fields of a person.
type UpdatePersonRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=64"`
	PartyID *string `json:"partyID,omitempty"`
}

// PersonResponse defines the data returned for a person, with a compact
// nested party for client grouping.
type PersonResponse struct {
	PersonID string         `json:"personID"`
	Name     string         `json:"name"`
	Party    *PartyResponse `json:"party,omitempty"`
	PartyID  string         `json:"partyID"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID: p.PersonID,
		Name:     p.Name,
		PartyID:  p.PartyID,
	}
}

// ToPersonResponseWithParty attaches the resolved party to the response.
func ToPersonResponseWithParty(p *domain.Person, party *domain.Party) PersonResponse {
	res := ToPersonResponse(p)
	if party != nil {
		pr := ToPartyResponse(party)
		res.Party = &pr
	}
	return res
}
