package model

import (
	"time"

	"innkeep/shared/model"
	"innkeep/shared/timezone"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldKind      = "kind"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"
)

const (
	KindRegular = "regular"
	KindSpecial = "special"

	StatusConfirmed = "confirmed"
	StatusValidated = "validated"
)

type Reservation struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	Kind      string    `db:"kind"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    string    `db:"status"`
	model.Metadata
}

// Period returns the reservation length in nights by calendar day
// subtraction.
func (r *Reservation) Period() int {
	return timezone.DaysBetween(r.StartDate, r.EndDate)
}
