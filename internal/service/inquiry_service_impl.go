package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

const (
	maxNameLength     = 200
	maxPhoneLength    = 32
	maxEmailLength    = 254
	maxStatusLength   = 64
	maxCategoryLength = 64
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	inquiries repository.InquiryRepository
	events    repository.StatusEventRepository
	messages  repository.WhatsAppMessageRepository
}

// NewInquiryService creates an InquiryService backed by the given repositories.
func NewInquiryService(
	inquiries repository.InquiryRepository,
	events repository.StatusEventRepository,
	messages repository.WhatsAppMessageRepository,
) InquiryService {
	return &inquiryServiceImpl{inquiries: inquiries, events: events, messages: messages}
}

func (s *inquiryServiceImpl) Submit(ctx context.Context, inq *model.Inquiry) error {
	inq.Name = strings.TrimSpace(inq.Name)
	inq.Phone = strings.TrimSpace(inq.Phone)
	inq.Email = strings.TrimSpace(inq.Email)

	switch {
	case inq.Name == "":
		return invalid("name", "name_required")
	case inq.Phone == "" && inq.Email == "":
		return invalid("contact", "phone_or_email_required")
	case utf8.RuneCountInString(inq.Name) > maxNameLength:
		return invalid("name", "name_too_long")
	case utf8.RuneCountInString(inq.Phone) > maxPhoneLength:
		return invalid("phone", "phone_too_long")
	case utf8.RuneCountInString(inq.Email) > maxEmailLength:
		return invalid("email", "email_too_long")
	}

	inq.Read = false
	if err := s.inquiries.Create(ctx, inq); err != nil {
		return err
	}
	slog.Info("inquiry submitted", "inquiry_id", inq.ID)
	return nil
}

func (s *inquiryServiceImpl) MarkRead(ctx context.Context, id int64) error {
	caller, ok := auth.CurrentUser(ctx)
	if !ok {
		return ErrUnauthorized
	}
	if err := s.inquiries.MarkRead(ctx, id); err != nil {
		return err
	}
	slog.Debug("inquiry marked read", "inquiry_id", id, "user_id", caller.UserID)
	return nil
}

// NormalizeStatus trims and lower-cases a status label.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func (s *inquiryServiceImpl) RecordStatus(ctx context.Context, inquiryID int64, status string) (*model.StatusEvent, error) {
	caller, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	status = NormalizeStatus(status)
	if status == "" {
		return nil, invalid("status", "status_required")
	}
	if utf8.RuneCountInString(status) > maxStatusLength {
		return nil, invalid("status", "status_too_long")
	}

	ev := &model.StatusEvent{
		InquiryID: inquiryID,
		Status:    status,
		UpdatedBy: caller.UserID,
	}
	if err := s.events.Append(ctx, ev); err != nil {
		return nil, callerError(err, caller)
	}
	slog.Info("inquiry status recorded",
		"inquiry_id", inquiryID,
		"status", status,
		"updated_by", caller.UserID,
	)
	return ev, nil
}

func (s *inquiryServiceImpl) StatusHistory(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error) {
	if _, err := s.inquiries.FindByID(ctx, inquiryID); err != nil {
		return nil, err
	}
	events, err := s.events.ListByInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*model.StatusEvent{}
	}
	return events, nil
}

func (s *inquiryServiceImpl) RecordWhatsAppSent(ctx context.Context, entity model.MessageEntity, entityID int64, category string) (*model.WhatsAppMessage, error) {
	caller, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	switch entity {
	case model.MessageEntityInquiry, model.MessageEntityRegistration:
	default:
		return nil, fmt.Errorf("record whatsapp sent: unknown entity %q", entity)
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = model.DefaultMessageCategory
	}
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return nil, invalid("category", "category_too_long")
	}

	msg := &model.WhatsAppMessage{
		EntityType: entity,
		EntityID:   entityID,
		Category:   category,
		SentBy:     caller.UserID,
	}
	if err := s.messages.Record(ctx, msg); err != nil {
		return nil, callerError(err, caller)
	}
	return msg, nil
}

// callerError turns a write rejected for a missing author row into
// ErrUnauthorized. The token was valid but its user no longer exists.
func callerError(err error, caller auth.Identity) error {
	if errors.Is(err, repository.ErrUnknownUser) {
		slog.Warn("write by unknown user rejected", "user_id", caller.UserID, "error", err)
		return ErrUnauthorized
	}
	return err
}
