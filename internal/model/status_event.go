package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusEvent is one append-only status change applied to an inquiry.
type StatusEvent struct {
	ID        int64     `json:"id"`
	InquiryID int64     `json:"inquiry_id"`
	Status    string    `json:"status"`
	UpdatedBy uuid.UUID `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}
