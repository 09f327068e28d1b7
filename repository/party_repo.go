package repository

import "kathasales/models"

type PartyRepository interface {
	CreateParty(party *models.Party) error
	GetParties() ([]*models.Party, error)
	GetPartyByID(id int64) (*models.Party, error)
	UpdateParty(party *models.Party) error
	DeleteParty(id int64) error
	// PartyLedger returns the party's receipts and payments merged into one
	// date-ordered sequence with a running balance.
	PartyLedger(partyID int64) ([]models.PartyLedgerRecord, error)
}
