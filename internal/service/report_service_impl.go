package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
)

type reportServiceImpl struct {
	inquiries   repository.InquiryRepository
	reports     repository.ReportRepository
	classifier  *BurnClassifier
	topUpdaters int
}

// NewReportService creates a ReportService. topUpdaters bounds the leaderboard length.
func NewReportService(
	inquiries repository.InquiryRepository,
	reports repository.ReportRepository,
	classifier *BurnClassifier,
	topUpdaters int,
) ReportService {
	return &reportServiceImpl{
		inquiries:   inquiries,
		reports:     reports,
		classifier:  classifier,
		topUpdaters: topUpdaters,
	}
}

func (s *reportServiceImpl) InquiriesWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error) {
	opts.Status = NormalizeStatus(opts.Status)
	rows, err := s.inquiries.ListWithStatus(ctx, opts)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*model.InquiryWithStatus{}
	}
	return rows, nil
}

// ButtonStats runs the four statistics as independent reads. They are not a
// consistent snapshot: writers may append events between them.
func (s *reportServiceImpl) ButtonStats(ctx context.Context) (*model.InquiryButtonStats, error) {
	var (
		stats   model.InquiryButtonStats
		current map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.reports.TotalStatusUpdates(gctx)
		if err != nil {
			return fmt.Errorf("total updates: %w", err)
		}
		stats.TotalUpdates = n
		return nil
	})
	g.Go(func() error {
		top, err := s.reports.TopStatusUpdaters(gctx, s.topUpdaters)
		if err != nil {
			return fmt.Errorf("top updaters: %w", err)
		}
		stats.TopUpdaters = top
		return nil
	})
	g.Go(func() error {
		counts, err := s.reports.StatusUpdateCounts(gctx)
		if err != nil {
			return fmt.Errorf("status update counts: %w", err)
		}
		stats.StatusUpdateCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.reports.CurrentStatusCounts(gctx)
		if err != nil {
			return fmt.Errorf("burn/unburn stats: %w", err)
		}
		current = counts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.BurnUnburnStats = s.classifier.Classify(current)
	if stats.TopUpdaters == nil {
		stats.TopUpdaters = []model.UpdaterCount{}
	}
	if stats.StatusUpdateCounts == nil {
		stats.StatusUpdateCounts = map[string]int{}
	}
	return &stats, nil
}

func (s *reportServiceImpl) WhatsAppSentCounts(ctx context.Context) (*model.WhatsAppSentCounts, error) {
	var out model.WhatsAppSentCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.reports.WhatsAppSentCounts(gctx, model.MessageEntityInquiry)
		if err != nil {
			return fmt.Errorf("inquiry sent counts: %w", err)
		}
		out.InquirySentCounts = nonNil(counts)
		return nil
	})
	g.Go(func() error {
		counts, err := s.reports.WhatsAppSentCounts(gctx, model.MessageEntityRegistration)
		if err != nil {
			return fmt.Errorf("registration sent counts: %w", err)
		}
		out.RegistrationSentCounts = nonNil(counts)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
