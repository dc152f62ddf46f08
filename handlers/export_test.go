package handlers

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"smartquote/services"
	"smartquote/store"
)

var testLayout = services.PDFLayout{ShowLogo: true, ShowBankDetails: true, ShowInclusiveColumn: true, ShowAmountInWords: true}

func TestHandleDocumentExport_Formats(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		filename    string
		magic       []byte
	}{
		{"pdf", "application/pdf", "invoice-ACM-2000.pdf", []byte("%PDF")},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "invoice-ACM-2000.xlsx", []byte("PK")},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			s := newTestStore(t)
			doc := addTestDocument(t, s)

			req := newJSONRequest(http.MethodGet, "/documents/"+doc.ID+"/export/"+tt.format, nil,
				map[string]string{"id": doc.ID, "format": tt.format})
			rec := serve(t, HandleDocumentExport(s, testLayout), req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			want := `attachment; filename="` + tt.filename + `"`
			if cd := rec.Header().Get("Content-Disposition"); cd != want {
				t.Errorf("Content-Disposition = %q, want %q", cd, want)
			}
			if !bytes.HasPrefix(rec.Body.Bytes(), tt.magic) {
				t.Errorf("body does not start with %q", tt.magic)
			}
		})
	}
}

func TestHandleDocumentExport_Errors(t *testing.T) {
	s := newTestStore(t)
	doc := addTestDocument(t, s)

	rec := serve(t, HandleDocumentExport(s, testLayout), newJSONRequest(http.MethodGet, "/x", nil,
		map[string]string{"id": doc.ID, "format": "csv"}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown format: expected 400, got %d", rec.Code)
	}

	rec = serve(t, HandleDocumentExport(s, testLayout), newJSONRequest(http.MethodGet, "/x", nil,
		map[string]string{"id": "missing", "format": "pdf"}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing document: expected 404, got %d", rec.Code)
	}

	if _, err := s.Dispatch(context.Background(), store.DeleteClient{ID: testClientID}); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	rec = serve(t, HandleDocumentExport(s, testLayout), newJSONRequest(http.MethodGet, "/x", nil,
		map[string]string{"id": doc.ID, "format": "pdf"}))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing client: expected 422, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Error("no file should be produced without a client")
	}
}
