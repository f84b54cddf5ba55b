package service

import (
	"context"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

// InquiryService defines the write-side operations on inquiries.
type InquiryService interface {
	// Submit validates and stores a new inquiry from the public form.
	Submit(ctx context.Context, inq *model.Inquiry) error

	// MarkRead sets the inquiry's read flag. Requires a caller in ctx and
	// returns ErrUnauthorized before touching the store otherwise.
	// Unknown ids return repository.ErrNotFound.
	MarkRead(ctx context.Context, id int64) error

	// RecordStatus appends a status event authored by the caller.
	RecordStatus(ctx context.Context, inquiryID int64, status string) (*model.StatusEvent, error)

	// StatusHistory lists the inquiry's status events, newest first.
	StatusHistory(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error)

	// RecordWhatsAppSent logs a sent WhatsApp message for an inquiry or registration.
	RecordWhatsAppSent(ctx context.Context, entity model.MessageEntity, entityID int64, category string) (*model.WhatsAppMessage, error)
}
