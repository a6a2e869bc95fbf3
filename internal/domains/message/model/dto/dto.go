package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/message/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required,max=5000"`
}

func (c *SendMessageRequest) ToModel(senderID string) model.Message {
	return model.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: c.ReceiverID,
		Content:    c.Content,
		SentAt:     timezone.Now(),
		IsRead:     false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  senderID,
			ModifiedBy: senderID,
		},
	}
}

type ReplyMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required,max=5000"`
}

type ForwardMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	SentAt     string `json:"sent_at"`
	IsRead     bool   `json:"is_read"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.SenderID = model.SenderID
	r.ReceiverID = model.ReceiverID
	r.Content = model.Content
	r.SentAt = timezone.Format(model.SentAt, constant.DateFormat)
	r.IsRead = model.IsRead
	r.Metadata.FromModel(model.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
