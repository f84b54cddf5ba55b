package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

func markReadRequest(id string) *http.Request {
	req := httptest.NewRequest("PATCH", "/api/inquiries/"+id+"/read", nil)
	req.SetPathValue("id", id)
	return req
}

func TestInquiryHandler_MarkRead_Success(t *testing.T) {
	var gotID int64
	h := NewInquiryHandler(&mockInquiryService{
		markReadFunc: func(_ context.Context, id int64) error {
			gotID = id
			return nil
		},
	})
	rec := httptest.NewRecorder()

	h.MarkRead(rec, markReadRequest("12"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 12 {
		t.Errorf("expected id=12, got %d", gotID)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":true}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestInquiryHandler_MarkRead_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"not found", fmt.Errorf("mark inquiry read 9: %w", repository.ErrNotFound), http.StatusNotFound, `{"error":"Not found"}`},
		{"store failure", fmt.Errorf("mark inquiry read: %w: %w", repository.ErrDataAccess, errors.New("conn refused")), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInquiryHandler(&mockInquiryService{
				markReadFunc: func(context.Context, int64) error { return tt.err },
			})
			rec := httptest.NewRecorder()

			h.MarkRead(rec, markReadRequest("9"))

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if body := strings.TrimSpace(rec.Body.String()); body != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, body)
			}
		})
	}
}

func TestInquiryHandler_MarkRead_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run(id, func(t *testing.T) {
			h := NewInquiryHandler(&mockInquiryService{
				markReadFunc: func(context.Context, int64) error {
					t.Error("service must not be called for an invalid id")
					return nil
				},
			})
			rec := httptest.NewRecorder()

			h.MarkRead(rec, markReadRequest(id))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

// Through the real mux and auth middleware, an anonymous PATCH never reaches the service.
func TestInquiryHandler_MarkRead_RequireAuthRoute(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{
		markReadFunc: func(context.Context, int64) error {
			t.Error("service must not be called without auth")
			return nil
		},
	})
	mux := http.NewServeMux()
	mux.Handle("PATCH /api/inquiries/{id}/read", auth.RequireAuth(http.HandlerFunc(h.MarkRead)))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("PATCH", "/api/inquiries/3/read", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestInquiryHandler_Submit(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{
		submitFunc: func(_ context.Context, inq *model.Inquiry) error {
			if inq.Name != "Bilal" || inq.Email != "bilal@example.com" {
				t.Errorf("unexpected inquiry: %+v", inq)
			}
			inq.ID = 77
			return nil
		},
	})
	body := `{"name":"Bilal","email":"bilal@example.com"}`
	rec := httptest.NewRecorder()

	h.Submit(rec, httptest.NewRequest("POST", "/api/inquiries", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var got model.Inquiry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 77 {
		t.Errorf("expected id=77, got %d", got.ID)
	}
}

func TestInquiryHandler_Submit_BadInput(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{
		submitFunc: func(context.Context, *model.Inquiry) error {
			return &service.ValidationError{Field: "name", Code: "name_required"}
		},
	})

	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest("POST", "/api/inquiries", strings.NewReader("{not json")))
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "invalid_json") {
		t.Errorf("expected 400 invalid_json, got %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest("POST", "/api/inquiries", strings.NewReader(`{"phone":"1"}`)))
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "name_required") {
		t.Errorf("expected 400 name_required, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestInquiryHandler_RecordStatus(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{})
	req := httptest.NewRequest("POST", "/api/inquiries/4/status", strings.NewReader(`{"status":"contacted"}`))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()

	h.RecordStatus(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var ev model.StatusEvent
	if err := json.NewDecoder(rec.Body).Decode(&ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.InquiryID != 4 || ev.Status != "contacted" {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestInquiryHandler_StatusHistory_NotFound(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{
		statusHistoryFunc: func(context.Context, int64) ([]*model.StatusEvent, error) {
			return nil, repository.ErrNotFound
		},
	})
	req := httptest.NewRequest("GET", "/api/inquiries/4/status-history", nil)
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()

	h.StatusHistory(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestInquiryHandler_WhatsAppSent(t *testing.T) {
	var gotEntity model.MessageEntity
	var gotCategory string
	h := NewInquiryHandler(&mockInquiryService{
		whatsAppSentFunc: func(_ context.Context, entity model.MessageEntity, _ int64, category string) (*model.WhatsAppMessage, error) {
			gotEntity, gotCategory = entity, category
			return &model.WhatsAppMessage{}, nil
		},
	})

	req := httptest.NewRequest("POST", "/api/registrations/8/whatsapp-sent", strings.NewReader(`{"category":"fee_reminder"}`))
	req.SetPathValue("id", "8")
	rec := httptest.NewRecorder()
	h.RegistrationWhatsAppSent(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotEntity != model.MessageEntityRegistration || gotCategory != "fee_reminder" {
		t.Errorf("unexpected call: %s %s", gotEntity, gotCategory)
	}

	// empty body is allowed
	req = httptest.NewRequest("POST", "/api/inquiries/8/whatsapp-sent", nil)
	req.SetPathValue("id", "8")
	rec = httptest.NewRecorder()
	h.InquiryWhatsAppSent(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotEntity != model.MessageEntityInquiry || gotCategory != "" {
		t.Errorf("unexpected call: %s %q", gotEntity, gotCategory)
	}
}

func TestInquiryHandler_WhatsAppSent_BodyWithoutLength(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantCall bool
	}{
		{name: "chunked empty body", body: "", wantCode: http.StatusCreated, wantCall: true},
		{name: "chunked whitespace", body: "\n", wantCode: http.StatusCreated, wantCall: true},
		{name: "chunked malformed body", body: `{"category":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := NewInquiryHandler(&mockInquiryService{
				whatsAppSentFunc: func(_ context.Context, _ model.MessageEntity, _ int64, category string) (*model.WhatsAppMessage, error) {
					called = true
					if category != "" {
						t.Errorf("expected default category, got %q", category)
					}
					return &model.WhatsAppMessage{}, nil
				},
			})

			req := httptest.NewRequest("POST", "/api/inquiries/8/whatsapp-sent", strings.NewReader(tt.body))
			req.ContentLength = -1
			req.SetPathValue("id", "8")
			rec := httptest.NewRecorder()
			h.InquiryWhatsAppSent(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if called != tt.wantCall {
				t.Errorf("service called = %v, want %v", called, tt.wantCall)
			}
		})
	}
}

func TestInquiryHandler_RegistrationWhatsAppSent_UnknownRegistration(t *testing.T) {
	h := NewInquiryHandler(&mockInquiryService{
		whatsAppSentFunc: func(context.Context, model.MessageEntity, int64, string) (*model.WhatsAppMessage, error) {
			return nil, fmt.Errorf("record whatsapp message: %w", repository.ErrNotFound)
		},
	})

	req := httptest.NewRequest("POST", "/api/registrations/404/whatsapp-sent", strings.NewReader(`{"category":"general"}`))
	req.SetPathValue("id", "404")
	rec := httptest.NewRecorder()
	h.RegistrationWhatsAppSent(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Not found" {
		t.Errorf("unexpected body: %v", body)
	}
}
