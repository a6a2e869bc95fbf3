package model

import "innkeep/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
)

type Hotel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	model.Metadata
}
