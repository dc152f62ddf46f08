package services

import (
	"testing"
	"time"

	"smartquote/models"
)

func TestComputeDashboard(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	item := func(price float64) []models.LineItem {
		return []models.LineItem{models.NewLineItem("x", 1, price)}
	}

	docs := []models.Document{
		{ID: "1", Type: models.DocumentInvoice, Status: models.StatusPaid, ClientID: "c1", LineItems: item(100), TaxRate: 10, CreatedAt: base},
		{ID: "2", Type: models.DocumentInvoice, Status: models.StatusSent, ClientID: "c1", LineItems: item(200), CreatedAt: base.Add(time.Hour)},
		{ID: "3", Type: models.DocumentInvoice, Status: models.StatusDraft, LineItems: item(999), CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Type: models.DocumentQuotation, Status: models.StatusPaid, LineItems: item(500), CreatedAt: base.Add(3 * time.Hour)},
		{ID: "5", Type: models.DocumentQuotation, Status: models.StatusDraft, CreatedAt: base.Add(4 * time.Hour)},
		{ID: "6", Type: models.DocumentInvoice, Status: models.StatusPaid, LineItems: item(50), CreatedAt: base.Add(5 * time.Hour)},
	}
	clients := []models.Client{{ID: "c1", Name: "Jo"}}

	got := ComputeDashboard(docs, clients)

	if !floatClose(got.TotalRevenue, 160) {
		t.Errorf("TotalRevenue = %f, want 160", got.TotalRevenue)
	}
	if !floatClose(got.PendingAmount, 200) {
		t.Errorf("PendingAmount = %f, want 200", got.PendingAmount)
	}
	if got.InvoiceCount != 4 || got.QuotationCount != 2 || got.ClientCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/2/1", got.InvoiceCount, got.QuotationCount, got.ClientCount)
	}
	if len(got.RecentDocuments) != 5 {
		t.Fatalf("expected 5 recent documents, got %d", len(got.RecentDocuments))
	}
	if got.RecentDocuments[0].ID != "6" || got.RecentDocuments[4].ID != "2" {
		t.Errorf("recent order = %s..%s, want 6..2", got.RecentDocuments[0].ID, got.RecentDocuments[4].ID)
	}
	if got.RecentDocuments[4].ClientName != "Jo" {
		t.Errorf("ClientName = %q, want Jo", got.RecentDocuments[4].ClientName)
	}
}
