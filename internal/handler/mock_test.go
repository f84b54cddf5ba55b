package handler

import (
	"context"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

type mockInquiryService struct {
	submitFunc        func(ctx context.Context, inq *model.Inquiry) error
	markReadFunc      func(ctx context.Context, id int64) error
	recordStatusFunc  func(ctx context.Context, inquiryID int64, status string) (*model.StatusEvent, error)
	statusHistoryFunc func(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error)
	whatsAppSentFunc  func(ctx context.Context, entity model.MessageEntity, entityID int64, category string) (*model.WhatsAppMessage, error)
}

func (m *mockInquiryService) Submit(ctx context.Context, inq *model.Inquiry) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, inq)
	}
	return nil
}
func (m *mockInquiryService) MarkRead(ctx context.Context, id int64) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}
func (m *mockInquiryService) RecordStatus(ctx context.Context, inquiryID int64, status string) (*model.StatusEvent, error) {
	if m.recordStatusFunc != nil {
		return m.recordStatusFunc(ctx, inquiryID, status)
	}
	return &model.StatusEvent{InquiryID: inquiryID, Status: status}, nil
}
func (m *mockInquiryService) StatusHistory(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error) {
	if m.statusHistoryFunc != nil {
		return m.statusHistoryFunc(ctx, inquiryID)
	}
	return []*model.StatusEvent{}, nil
}
func (m *mockInquiryService) RecordWhatsAppSent(ctx context.Context, entity model.MessageEntity, entityID int64, category string) (*model.WhatsAppMessage, error) {
	if m.whatsAppSentFunc != nil {
		return m.whatsAppSentFunc(ctx, entity, entityID, category)
	}
	return &model.WhatsAppMessage{EntityType: entity, EntityID: entityID, Category: category}, nil
}

type mockReportService struct {
	listFunc     func(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error)
	statsFunc    func(ctx context.Context) (*model.InquiryButtonStats, error)
	whatsAppFunc func(ctx context.Context) (*model.WhatsAppSentCounts, error)
}

func (m *mockReportService) InquiriesWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return []*model.InquiryWithStatus{}, nil
}
func (m *mockReportService) ButtonStats(ctx context.Context) (*model.InquiryButtonStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.InquiryButtonStats{TopUpdaters: []model.UpdaterCount{}, StatusUpdateCounts: map[string]int{}}, nil
}
func (m *mockReportService) WhatsAppSentCounts(ctx context.Context) (*model.WhatsAppSentCounts, error) {
	if m.whatsAppFunc != nil {
		return m.whatsAppFunc(ctx)
	}
	return &model.WhatsAppSentCounts{InquirySentCounts: map[string]int{}, RegistrationSentCounts: map[string]int{}}, nil
}

type mockUserService struct {
	currentFunc func(ctx context.Context) (*model.User, error)
}

func (m *mockUserService) Current(ctx context.Context) (*model.User, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx)
	}
	return nil, nil
}
