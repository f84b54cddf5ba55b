package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockInquiryRepository struct {
	createFunc         func(ctx context.Context, inq *model.Inquiry) error
	findByIDFunc       func(ctx context.Context, id int64) (*model.Inquiry, error)
	markReadFunc       func(ctx context.Context, id int64) error
	listWithStatusFunc func(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error)
}

func (m *mockInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, inq)
	}
	return nil
}
func (m *mockInquiryRepository) FindByID(ctx context.Context, id int64) (*model.Inquiry, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockInquiryRepository) MarkRead(ctx context.Context, id int64) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}
func (m *mockInquiryRepository) ListWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error) {
	if m.listWithStatusFunc != nil {
		return m.listWithStatusFunc(ctx, opts)
	}
	return nil, nil
}

type mockStatusEventRepository struct {
	appendFunc        func(ctx context.Context, ev *model.StatusEvent) error
	listByInquiryFunc func(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error)
}

func (m *mockStatusEventRepository) Append(ctx context.Context, ev *model.StatusEvent) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, ev)
	}
	return nil
}
func (m *mockStatusEventRepository) ListByInquiry(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error) {
	if m.listByInquiryFunc != nil {
		return m.listByInquiryFunc(ctx, inquiryID)
	}
	return nil, nil
}

type mockWhatsAppMessageRepository struct {
	recordFunc func(ctx context.Context, msg *model.WhatsAppMessage) error
}

func (m *mockWhatsAppMessageRepository) Record(ctx context.Context, msg *model.WhatsAppMessage) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, msg)
	}
	return nil
}

type mockReportRepository struct {
	totalFunc          func(ctx context.Context) (int, error)
	topUpdatersFunc    func(ctx context.Context, limit int) ([]model.UpdaterCount, error)
	statusCountsFunc   func(ctx context.Context) (map[string]int, error)
	currentCountsFunc  func(ctx context.Context) (map[string]int, error)
	whatsAppCountsFunc func(ctx context.Context, entity model.MessageEntity) (map[string]int, error)
}

func (m *mockReportRepository) TotalStatusUpdates(ctx context.Context) (int, error) {
	if m.totalFunc != nil {
		return m.totalFunc(ctx)
	}
	return 0, nil
}
func (m *mockReportRepository) TopStatusUpdaters(ctx context.Context, limit int) ([]model.UpdaterCount, error) {
	if m.topUpdatersFunc != nil {
		return m.topUpdatersFunc(ctx, limit)
	}
	return nil, nil
}
func (m *mockReportRepository) StatusUpdateCounts(ctx context.Context) (map[string]int, error) {
	if m.statusCountsFunc != nil {
		return m.statusCountsFunc(ctx)
	}
	return nil, nil
}
func (m *mockReportRepository) CurrentStatusCounts(ctx context.Context) (map[string]int, error) {
	if m.currentCountsFunc != nil {
		return m.currentCountsFunc(ctx)
	}
	return nil, nil
}
func (m *mockReportRepository) WhatsAppSentCounts(ctx context.Context, entity model.MessageEntity) (map[string]int, error) {
	if m.whatsAppCountsFunc != nil {
		return m.whatsAppCountsFunc(ctx, entity)
	}
	return nil, nil
}

type mockUserRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (*model.User, error)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

var testUserID = uuid.MustParse("6f1c2b1e-3a4d-4c8e-9b7a-2d5e8f0a1b2c")

func authedContext() context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{UserID: testUserID, Role: model.RoleStaff})
}
