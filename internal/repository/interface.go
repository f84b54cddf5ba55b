package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository looks up dashboard users.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// InquiryRepository persists inquiries and resolves their current status.
type InquiryRepository interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	FindByID(ctx context.Context, id int64) (*model.Inquiry, error)
	// MarkRead sets read=true. Returns ErrNotFound when no row matches id.
	MarkRead(ctx context.Context, id int64) error
	// ListWithStatus joins every inquiry with its latest status event,
	// newest inquiry first.
	ListWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error)
}

// StatusEventRepository is the append-only status log.
type StatusEventRepository interface {
	Append(ctx context.Context, ev *model.StatusEvent) error
	ListByInquiry(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error)
}

// ReportRepository issues the read-only aggregate queries behind the reports.
// Each method is a single independent statement.
type ReportRepository interface {
	TotalStatusUpdates(ctx context.Context) (int, error)
	TopStatusUpdaters(ctx context.Context, limit int) ([]model.UpdaterCount, error)
	StatusUpdateCounts(ctx context.Context) (map[string]int, error)
	// CurrentStatusCounts counts inquiries by current status. Inquiries
	// without events are not included.
	CurrentStatusCounts(ctx context.Context) (map[string]int, error)
	WhatsAppSentCounts(ctx context.Context, entity model.MessageEntity) (map[string]int, error)
}

// WhatsAppMessageRepository records sent WhatsApp messages.
type WhatsAppMessageRepository interface {
	Record(ctx context.Context, msg *model.WhatsAppMessage) error
}
