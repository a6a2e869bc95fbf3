package model

import (
	"github.com/shopspring/decimal"

	"innkeep/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldNumber        = "number"
	FieldCapacity      = "capacity"
	FieldTotalGuests   = "total_guests"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
	FieldActive        = "active"
)

type Room struct {
	ID            string          `db:"id"`
	HotelID       string          `db:"hotel_id"`
	Number        string          `db:"number"`
	Capacity      int             `db:"capacity"`
	TotalGuests   int             `db:"total_guests"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Image         string          `db:"image"`
	Active        bool            `db:"active"`
	model.Metadata
}
