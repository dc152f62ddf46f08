package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartquote/llm"
	"smartquote/models"
	"smartquote/services"
	"smartquote/store"
)

func parseToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Types(t *testing.T) {
	tests := []struct {
		toastType string
		message   string
	}{
		{"success", "Quotation QUO-250314 created"},
		{"error", "Something went wrong"},
		{"warning", "Client name is required"},
		{"info", `Line "Design" <updated>`},
	}

	for _, tt := range tests {
		t.Run(tt.toastType, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			SetToast(e, tt.toastType, tt.message)

			toast := parseToast(t, rec)
			if toast["type"] != tt.toastType {
				t.Errorf("expected type %q, got %q", tt.toastType, toast["type"])
			}
			if toast["message"] != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, toast["message"])
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	rec.Header().Set("HX-Trigger", `{"totalsChanged":{"documentId":"doc-1"}}`)

	SetToast(e, "success", "Document saved")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["totalsChanged"]; !ok {
		t.Error("expected totalsChanged key to be preserved after merge")
	}
	if toast := parseToast(t, rec); toast["message"] != "Document saved" {
		t.Errorf("expected merged toast message, got %q", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	if toast := parseToast(t, rec); toast["message"] != "Overwritten" {
		t.Errorf("expected toast after overwriting invalid header, got %v", toast)
	}
}

func TestErrorToast_JSONBodyAndReswap(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		msg       string
		toastType string
	}{
		{"bad request", http.StatusBadRequest, "Invalid input", "error"},
		{"not found", http.StatusNotFound, "Document not found", "error"},
		{"incomplete", http.StatusUnprocessableEntity, "client is required", "warning"},
		{"server error", http.StatusInternalServerError, "Something went wrong", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			if err := ErrorToast(e, tt.code, tt.msg); err != nil {
				t.Fatalf("ErrorToast returned error: %v", err)
			}

			if rec.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, rec.Code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
			body := decodeBody[map[string]string](t, rec)
			if body["error"] != tt.msg {
				t.Errorf("expected error %q, got %q", tt.msg, body["error"])
			}
			if toast := parseToast(t, rec); toast["type"] != tt.toastType {
				t.Errorf("expected toast type %q, got %q", tt.toastType, toast["type"])
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("document %q: %w", "x", store.ErrNotFound), http.StatusNotFound},
		{store.ErrInvalidDiscount, http.StatusBadRequest},
		{store.ErrInvalidLineItem, http.StatusBadRequest},
		{store.ErrInvalidStatus, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", services.ErrUnknownExportFormat, "csv"), http.StatusBadRequest},
		{llm.ErrUnknownProvider, http.StatusBadRequest},
		{services.ErrMissingClient, http.StatusUnprocessableEntity},
		{services.ErrNoLineItems, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: team size", models.ErrInvalidProjectInput), http.StatusUnprocessableEntity},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRespondError_HidesServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	respondError(e, "test", errors.New("save snapshot: connection refused"))

	body := decodeBody[map[string]string](t, rec)
	if body["error"] != "Something went wrong, please try again" {
		t.Errorf("expected generic message, got %q", body["error"])
	}
}
