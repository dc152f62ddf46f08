package services

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildDocumentExportData(t *testing.T) {
	data, err := BuildDocumentExportData(testProfile(), testClient(), testDocument())
	if err != nil {
		t.Fatalf("BuildDocumentExportData() error = %v", err)
	}

	if data.Title != "INVOICE" {
		t.Errorf("Title = %q, want INVOICE", data.Title)
	}
	if data.CurrencySymbol != "R" {
		t.Errorf("CurrencySymbol = %q, want R", data.CurrencySymbol)
	}
	if data.IssueDate != "01 Mar 2026" {
		t.Errorf("IssueDate = %q", data.IssueDate)
	}
	if !floatClose(data.Totals.Total, 258.75) {
		t.Errorf("Totals.Total = %f, want 258.75", data.Totals.Total)
	}
	if !floatClose(data.DiscountPercent, 10) {
		t.Errorf("DiscountPercent = %f, want 10", data.DiscountPercent)
	}
	if len(data.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(data.LineItems))
	}
	if !floatClose(data.LineItems[0].InclTotal, 230) {
		t.Errorf("row 1 InclTotal = %f, want 230", data.LineItems[0].InclTotal)
	}
	if data.LineItems[1].SINo != 2 {
		t.Errorf("row 2 SINo = %d", data.LineItems[1].SINo)
	}
	if !strings.Contains(data.From.AddressLines, "Cape Town, WC 8001") {
		t.Errorf("From.AddressLines = %q", data.From.AddressLines)
	}
	if !strings.HasSuffix(data.AmountInWords, "South African Rand Only") {
		t.Errorf("AmountInWords = %q", data.AmountInWords)
	}
}

// Totals re-derived from the exported rows match the exported totals.
func TestBuildDocumentExportData_RoundTrip(t *testing.T) {
	doc := testDocument()
	data, err := BuildDocumentExportData(testProfile(), testClient(), doc)
	if err != nil {
		t.Fatalf("BuildDocumentExportData() error = %v", err)
	}

	var subtotal float64
	for _, row := range data.LineItems {
		subtotal += row.ExclTotal
	}
	if !floatClose(subtotal, data.Totals.Subtotal) {
		t.Errorf("row subtotal %f != exported subtotal %f", subtotal, data.Totals.Subtotal)
	}
	if again := DocumentTotals(doc); again != data.Totals {
		t.Errorf("re-derived totals %+v != exported %+v", again, data.Totals)
	}
}

func TestBuildDocumentExportData_InputIncomplete(t *testing.T) {
	if _, err := BuildDocumentExportData(nil, testClient(), testDocument()); !errors.Is(err, ErrMissingBusinessProfile) {
		t.Errorf("expected ErrMissingBusinessProfile, got %v", err)
	}
	if _, err := BuildDocumentExportData(testProfile(), nil, testDocument()); !errors.Is(err, ErrMissingClient) {
		t.Errorf("expected ErrMissingClient, got %v", err)
	}
}

func TestDocumentExportDataFilename(t *testing.T) {
	data := &DocumentExportData{DocumentType: "invoice", DocumentNumber: "ACM/2000"}
	if got := data.Filename("pdf"); got != "invoice-ACM-2000.pdf" {
		t.Errorf("Filename = %q", got)
	}
	data.DocumentNumber = ""
	if got := data.Filename("xlsx"); got != "invoice-draft.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}

func TestFormatAddress(t *testing.T) {
	got := formatAddress("1 Main", "Durban", "", "", "South Africa")
	if got != "1 Main\nDurban\nSouth Africa" {
		t.Errorf("formatAddress = %q", got)
	}
	if got := formatAddress("", "", "", "", ""); got != "" {
		t.Errorf("formatAddress(empty) = %q", got)
	}
}
