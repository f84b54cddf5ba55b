package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 16 << 10

// InquiryHandler handles inquiry submission, read-marking and status updates.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

var successBody = map[string]bool{"success": true}

// submitRequest is the expected JSON body for POST /api/inquiries.
type submitRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Submit handles POST /api/inquiries (public).
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inq := &model.Inquiry{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.inquiryService.Submit(r.Context(), inq); err != nil {
		writeServiceError(w, r, "submit inquiry", err)
		return
	}
	writeJSON(w, http.StatusCreated, inq)
}

// MarkRead handles PATCH /api/inquiries/{id}/read.
func (h *InquiryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	if err := h.inquiryService.MarkRead(r.Context(), id); err != nil {
		writeServiceError(w, r, "mark inquiry read", err, "inquiry_id", id)
		return
	}
	writeJSON(w, http.StatusOK, successBody)
}

type statusRequest struct {
	Status string `json:"status"`
}

// RecordStatus handles POST /api/inquiries/{id}/status.
func (h *InquiryHandler) RecordStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ev, err := h.inquiryService.RecordStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, r, "record inquiry status", err, "inquiry_id", id)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// StatusHistory handles GET /api/inquiries/{id}/status-history.
func (h *InquiryHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	events, err := h.inquiryService.StatusHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "list status history", err, "inquiry_id", id)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type whatsAppSentRequest struct {
	Category string `json:"category"`
}

// InquiryWhatsAppSent handles POST /api/inquiries/{id}/whatsapp-sent.
func (h *InquiryHandler) InquiryWhatsAppSent(w http.ResponseWriter, r *http.Request) {
	h.whatsAppSent(w, r, model.MessageEntityInquiry, msgInvalidID)
}

// RegistrationWhatsAppSent handles POST /api/registrations/{id}/whatsapp-sent.
func (h *InquiryHandler) RegistrationWhatsAppSent(w http.ResponseWriter, r *http.Request) {
	h.whatsAppSent(w, r, model.MessageEntityRegistration, "Invalid registration id")
}

func (h *InquiryHandler) whatsAppSent(w http.ResponseWriter, r *http.Request, entity model.MessageEntity, badID string) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, badID)
		return
	}
	// The body is optional; an empty one means the default category.
	var req whatsAppSentRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}
	if _, err := h.inquiryService.RecordWhatsAppSent(r.Context(), entity, id, req.Category); err != nil {
		writeServiceError(w, r, "record whatsapp sent", err, "entity", entity, "entity_id", id)
		return
	}
	writeJSON(w, http.StatusCreated, successBody)
}

// decodeBody decodes a size-limited JSON body, writing 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, false)
}

// decodeOptionalBody is decodeBody, except that an empty body leaves dst
// untouched. Chunked requests report ContentLength -1, so emptiness is
// detected from the stream itself.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}
