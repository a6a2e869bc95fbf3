package model

import "innkeep/shared/model"

const (
	TableName  = "credit_cards"
	EntityName = "credit card"

	FieldID         = "id"
	FieldCardOwner  = "card_owner"
	FieldCardNumber = "card_number"
)

// CreditCard stores the card number in masked form only. The raw number is
// masked once at create time and never persisted.
type CreditCard struct {
	ID         string `db:"id"`
	CardOwner  string `db:"card_owner"`
	CardNumber string `db:"card_number"`
	model.Metadata
}
