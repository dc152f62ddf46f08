package services

import (
	"testing"
	"time"

	"smartquote/models"
)

func TestNextInvoiceNumber(t *testing.T) {
	docs := []models.Document{
		{Type: models.DocumentInvoice},
		{Type: models.DocumentQuotation},
		{Type: models.DocumentInvoice},
	}

	tests := []struct {
		name    string
		profile *models.BusinessProfile
		docs    []models.Document
		want    string
	}{
		{"no_profile_no_docs", nil, nil, "INV-1000"},
		{"no_profile_counts_invoices_only", nil, docs, "INV-1002"},
		{"custom_prefix_and_start", &models.BusinessProfile{InvoicePrefix: "ACM", InvoiceNumberStart: 2000}, docs, "ACM-2002"},
		{"empty_prefix_defaults", &models.BusinessProfile{InvoiceNumberStart: 5}, nil, "INV-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextInvoiceNumber(tt.profile, tt.docs); got != tt.want {
				t.Errorf("NextInvoiceNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuotationNumber(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{1700000123456, "QUO-123456"},
		{1700000000042, "QUO-000042"},
	}
	for _, tt := range tests {
		if got := QuotationNumber(time.UnixMilli(tt.millis)); got != tt.want {
			t.Errorf("QuotationNumber(%d) = %q, want %q", tt.millis, got, tt.want)
		}
	}
}

func TestNextDocumentNumber(t *testing.T) {
	now := time.UnixMilli(1700000123456)
	if got := NextDocumentNumber(models.DocumentInvoice, nil, nil, now); got != "INV-1000" {
		t.Errorf("invoice number = %q", got)
	}
	if got := NextDocumentNumber(models.DocumentQuotation, nil, nil, now); got != "QUO-123456" {
		t.Errorf("quotation number = %q", got)
	}
}
