package services

import (
	"sort"

	"smartquote/models"
)

const recentDocumentsLimit = 5

// DashboardStats summarises the documents for the dashboard page.
type DashboardStats struct {
	TotalRevenue    float64           `json:"totalRevenue"`  // paid invoices
	PendingAmount   float64           `json:"pendingAmount"` // sent invoices
	InvoiceCount    int               `json:"invoiceCount"`
	QuotationCount  int               `json:"quotationCount"`
	ClientCount     int               `json:"clientCount"`
	RecentDocuments []DocumentSummary `json:"recentDocuments"`
}

// DocumentSummary is one row of the recent-documents list.
type DocumentSummary struct {
	ID             string                `json:"id"`
	Type           models.DocumentType   `json:"type"`
	Status         models.DocumentStatus `json:"status"`
	DocumentNumber string                `json:"documentNumber"`
	ClientName     string                `json:"clientName"`
	Total          float64               `json:"total"`
	Currency       string                `json:"currency"`
}

// ComputeDashboard derives the dashboard stats. Document totals are
// recomputed from line items rather than read from storage.
func ComputeDashboard(documents []models.Document, clients []models.Client) DashboardStats {
	stats := DashboardStats{ClientCount: len(clients)}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	for _, d := range documents {
		switch d.Type {
		case models.DocumentInvoice:
			stats.InvoiceCount++
			total := DocumentTotals(d).Total
			switch d.Status {
			case models.StatusPaid:
				stats.TotalRevenue += total
			case models.StatusSent:
				stats.PendingAmount += total
			}
		case models.DocumentQuotation:
			stats.QuotationCount++
		}
	}

	recent := make([]models.Document, len(documents))
	copy(recent, documents)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentDocumentsLimit {
		recent = recent[:recentDocumentsLimit]
	}

	stats.RecentDocuments = make([]DocumentSummary, 0, len(recent))
	for _, d := range recent {
		stats.RecentDocuments = append(stats.RecentDocuments, DocumentSummary{
			ID:             d.ID,
			Type:           d.Type,
			Status:         d.Status,
			DocumentNumber: d.DocumentNumber,
			ClientName:     clientNames[d.ClientID],
			Total:          DocumentTotals(d).Total,
			Currency:       d.Currency,
		})
	}

	return stats
}
