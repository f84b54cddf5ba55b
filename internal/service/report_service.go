package service

import (
	"context"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

// ReportService builds the read-only reports.
type ReportService interface {
	// InquiriesWithStatus returns every inquiry joined with its current status,
	// newest inquiry first. Never returns a nil slice on success.
	InquiriesWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error)

	// ButtonStats computes the four status statistics. Any failing
	// sub-query fails the whole report.
	ButtonStats(ctx context.Context) (*model.InquiryButtonStats, error)

	// WhatsAppSentCounts returns per-category sent counts for inquiries and registrations.
	WhatsAppSentCounts(ctx context.Context) (*model.WhatsAppSentCounts, error)
}
