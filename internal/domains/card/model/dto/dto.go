package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/card/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	"innkeep/shared/fieldval"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

// CreateCreditCardRequest takes the card number as raw JSON so non-string
// payloads reach the masking layer and fail with its own message.
type CreateCreditCardRequest struct {
	CardOwner  string `json:"card_owner"  validate:"required,max=100"`
	CardNumber any    `json:"card_number" validate:"required"`
}

func (c *CreateCreditCardRequest) ToModel(user string) (model.CreditCard, error) {
	masked, err := fieldval.MaskCardNumber(c.CardNumber)
	if err != nil {
		return model.CreditCard{}, err
	}

	return model.CreditCard{
		ID:         uuid.NewString(),
		CardOwner:  c.CardOwner,
		CardNumber: masked,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCreditCardRequest struct {
	CardOwner string `db:"card_owner" json:"card_owner" validate:"omitempty,max=100"`
}

type CreditCardResponse struct {
	ID         string `json:"id"`
	CardOwner  string `json:"card_owner"`
	CardNumber string `json:"card_number"`
	gDto.Metadata
}

func (r *CreditCardResponse) FromModel(model model.CreditCard) {
	r.ID = model.ID
	r.CardOwner = model.CardOwner
	r.CardNumber = model.CardNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetCreditCardsResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetCreditCardsResponse) FromModels(models []model.CreditCard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CreditCards = make([]CreditCardResponse, len(models))
	for i, mod := range models {
		r.CreditCards[i].FromModel(mod)
	}
}
