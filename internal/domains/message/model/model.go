package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "messages"
	EntityName = "message"

	FieldID         = "id"
	FieldSenderID   = "sender_id"
	FieldReceiverID = "receiver_id"
	FieldContent    = "content"
	FieldSentAt     = "sent_at"
	FieldIsRead     = "is_read"
)

type Message struct {
	ID         string    `db:"id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Content    string    `db:"content"`
	SentAt     time.Time `db:"sent_at"`
	IsRead     bool      `db:"is_read"`
	model.Metadata
}
