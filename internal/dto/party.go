package dto

import (
	"github.com/ckeeling/splitledger/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Slug        string `json:"slug" binding:"required,max=64,lowercase"`
	IsHousehold bool   `json:"isHousehold"`
}

// UpdatePartyRequest defines the updatable fields of a party.
type UpdatePartyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=64"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,max=64,lowercase"`
	IsHousehold *bool   `json:"isHousehold,omitempty"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID     string `json:"partyID"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	IsHousehold bool   `json:"isHousehold"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:     p.PartyID,
		Name:        p.Name,
		Slug:        p.Slug,
		IsHousehold: p.IsHousehold,
	}
}

// ToListPartyResponse converts a slice of domain.Party to PartyResponse DTOs
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
