package mapping

import (
	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:     d.PartyID,
		Name:        d.Name,
		Slug:        d.Slug,
		IsHousehold: d.IsHousehold,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		Name:        m.Name,
		Slug:        m.Slug,
		IsHousehold: m.IsHousehold,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Party to domain Party
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:    d.PersonID,
		Name:        d.Name,
		PartyID:     d.PartyID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:    m.PersonID,
		Name:        m.Name,
		PartyID:     m.PartyID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPersonSlice converts a slice of model Person to domain Person
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:       d.ExpenseID,
		Date:            d.Date,
		Description:     d.Description,
		Category:        string(d.Category),
		CurrencyCode:    d.CurrencyCode,
		FxToCAD:         d.FxToCAD,
		Amount:          d.Amount,
		PaidByPersonID:  d.PaidByPersonID,
		WeightHousehold: d.WeightHousehold,
		WeightBev:       d.WeightBev,
		Notes:           d.Notes,
		CreatedByUserID: d.CreatedByUserID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:       m.ExpenseID,
		Date:            m.Date,
		Description:     m.Description,
		Category:        domain.ExpenseCategory(m.Category),
		CurrencyCode:    m.CurrencyCode,
		FxToCAD:         m.FxToCAD,
		Amount:          m.Amount,
		PaidByPersonID:  m.PaidByPersonID,
		WeightHousehold: m.WeightHousehold,
		WeightBev:       m.WeightBev,
		Notes:           m.Notes,
		CreatedByUserID: m.CreatedByUserID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSettlement converts a domain Settlement to a model Settlement
func ToModelSettlement(d domain.Settlement) models.Settlement {
	return models.Settlement{
		SettlementID:    d.SettlementID,
		Date:            d.Date,
		FromPartyID:     d.FromPartyID,
		ToPartyID:       d.ToPartyID,
		AmountCAD:       d.AmountCAD,
		Notes:           d.Notes,
		CreatedByUserID: d.CreatedByUserID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettlement converts a model Settlement to a domain Settlement
func ToDomainSettlement(m models.Settlement) domain.Settlement {
	return domain.Settlement{
		SettlementID:    m.SettlementID,
		Date:            m.Date,
		FromPartyID:     m.FromPartyID,
		ToPartyID:       m.ToPartyID,
		AmountCAD:       m.AmountCAD,
		Notes:           m.Notes,
		CreatedByUserID: m.CreatedByUserID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSettlementSlice converts a slice of model Settlement to domain Settlement
func ToDomainSettlementSlice(ms []models.Settlement) []domain.Settlement {
	ds := make([]domain.Settlement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSettlement(m)
	}
	return ds
}
