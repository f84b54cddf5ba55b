package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageEntity names the kind of record a WhatsApp message was sent for.
type MessageEntity string

const (
	MessageEntityInquiry      MessageEntity = "inquiry"
	MessageEntityRegistration MessageEntity = "registration"
)

// DefaultMessageCategory is used when a sent message is logged without a category.
const DefaultMessageCategory = "general"

// WhatsAppMessage is one "message sent" log entry.
type WhatsAppMessage struct {
	ID         int64         `json:"id"`
	EntityType MessageEntity `json:"entity_type"`
	EntityID   int64         `json:"entity_id"`
	Category   string        `json:"category"`
	SentBy     uuid.UUID     `json:"sent_by"`
	CreatedAt  time.Time     `json:"created_at"`
}
