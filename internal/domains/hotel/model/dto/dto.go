package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/hotel/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateHotelRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type HotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
