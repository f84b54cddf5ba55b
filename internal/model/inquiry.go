package model

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a prospective-student contact record.
type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryWithStatus is an Inquiry joined with its most recent status event.
// The three status fields are nil when the inquiry has no events yet.
type InquiryWithStatus struct {
	Inquiry
	CurrentStatus *string    `json:"current_status"`
	LastUpdated   *time.Time `json:"last_updated"`
	UpdatedBy     *uuid.UUID `json:"updated_by"`
}

// InquiryListOptions filters the inquiries-with-status listing.
// Zero values mean "no filter". Limit 0 returns every row after Offset.
type InquiryListOptions struct {
	// Status matches the current status exactly.
	Status     string
	UnreadOnly bool
	Limit      int
	Offset     int
}
