package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateRoomRequest struct {
	HotelID       string                `json:"hotel_id"        validate:"required"`
	Number        string                `json:"number"          validate:"required,max=20"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	TotalGuests   int                   `json:"total_guests"    validate:"omitempty,min=0"`
	PricePerNight string                `json:"price_per_night" validate:"required"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) (model.Room, error) {
	price, err := decimal.NewFromString(c.PricePerNight)
	if err != nil {
		return model.Room{}, err
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Number:        c.Number,
		Capacity:      c.Capacity,
		TotalGuests:   c.TotalGuests,
		PricePerNight: price.Round(2),
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateRoomRequest struct {
	Number        string                `db:"number"          json:"number"          validate:"omitempty,max=20"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	TotalGuests   *int                  `db:"total_guests"    json:"total_guests"    validate:"omitempty,min=0"`
	PricePerNight string                `db:"price_per_night" json:"price_per_night" validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomResponse struct {
	ID            string `json:"id"`
	HotelID       string `json:"hotel_id"`
	Number        string `json:"number"`
	Capacity      int    `json:"capacity"`
	TotalGuests   int    `json:"total_guests"`
	PricePerNight string `json:"price_per_night"`
	Image         string `json:"image"`
	Active        bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Number = model.Number
	r.Capacity = model.Capacity
	r.TotalGuests = model.TotalGuests
	r.PricePerNight = model.PricePerNight.StringFixed(2)
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type CreateRoomResponse struct {
	Room    RoomResponse `json:"room"`
	Message string       `json:"message"`
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
