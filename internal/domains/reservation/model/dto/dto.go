package dto

import (
	"time"

	"github.com/google/uuid"

	"innkeep/internal/domains/reservation/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateReservationRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

func (c *CreateReservationRequest) ToModel(user, kind, status string) (model.Reservation, error) {
	startDate, err := timezone.ParseDate(c.StartDate)
	if err != nil {
		return model.Reservation{}, err
	}

	endDate, err := timezone.ParseDate(c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		Kind:      kind,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ExtendReservationRequest struct {
	Days int `json:"days" validate:"required,min=1"`
}

type ReservationResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Nights    int    `json:"nights"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Kind = model.Kind
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Nights = model.Period()
	r.Metadata.FromModel(model.Metadata)
}

type CreateReservationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	TotalCost   string              `json:"total_cost"`
	Message     string              `json:"message"`
}

type ValidateReservationResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Nights    int    `json:"nights"`
	TotalCost string `json:"total_cost"`
}

type ExtendReservationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Message     string              `json:"message"`
}

type QuoteResponse struct {
	RoomID        string `json:"room_id"`
	Nights        int    `json:"nights"`
	PricePerNight string `json:"price_per_night"`
	TotalCost     string `json:"total_cost"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is the payload published to Kafka on reservation writes.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}
