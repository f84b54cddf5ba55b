package handler

import (
	"net/http"
	"strconv"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
)

const maxListLimit = 500

// ReportHandler serves the read-only dashboard reports.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// InquiriesWithStatus handles GET /api/reports/inquiries-with-status.
// Optional query params: status, unread=true, limit (1..500), offset.
func (h *ReportHandler) InquiriesWithStatus(w http.ResponseWriter, r *http.Request) {
	opts, msg := parseListOptions(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	rows, err := h.reportService.InquiriesWithStatus(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, "list inquiries with status", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// ButtonStats handles GET /api/reports/inquiry-button-stats.
func (h *ReportHandler) ButtonStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.ButtonStats(r.Context())
	if err != nil {
		writeServiceError(w, r, "inquiry button stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// WhatsAppSentCounts handles GET /api/reports/whatsapp-sent-counts.
func (h *ReportHandler) WhatsAppSentCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.WhatsAppSentCounts(r.Context())
	if err != nil {
		writeServiceError(w, r, "whatsapp sent counts", err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func parseListOptions(r *http.Request) (model.InquiryListOptions, string) {
	q := r.URL.Query()
	opts := model.InquiryListOptions{
		Status:     q.Get("status"),
		UnreadOnly: q.Get("unread") == "true",
	}
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 || n > maxListLimit {
			return opts, "invalid_limit"
		}
		opts.Limit = n
	}
	if o := q.Get("offset"); o != "" {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 {
			return opts, "invalid_offset"
		}
		opts.Offset = n
	}
	return opts, ""
}
