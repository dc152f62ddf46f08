package services

import (
	"fmt"
	"time"

	"smartquote/models"
)

const (
	defaultInvoicePrefix = "INV"
	defaultInvoiceStart  = 1000
)

// formatInvoiceNumber constructs the invoice number string from components.
func formatInvoiceNumber(prefix string, sequence int) string {
	return fmt.Sprintf("%s-%d", prefix, sequence)
}

// NextInvoiceNumber returns the number for the next invoice.
// Format: {prefix}-{start + existing invoice count}
//   - prefix: profile.InvoicePrefix, "INV" when empty or no profile
//   - start: profile.InvoiceNumberStart, 1000 when zero or no profile
func NextInvoiceNumber(profile *models.BusinessProfile, documents []models.Document) string {
	prefix := defaultInvoicePrefix
	start := defaultInvoiceStart
	if profile != nil {
		if profile.InvoicePrefix != "" {
			prefix = profile.InvoicePrefix
		}
		if profile.InvoiceNumberStart != 0 {
			start = profile.InvoiceNumberStart
		}
	}

	count := 0
	for _, d := range documents {
		if d.Type == models.DocumentInvoice {
			count++
		}
	}

	return formatInvoiceNumber(prefix, start+count)
}

// QuotationNumber returns "QUO-" followed by the last 6 digits of the unix
// millisecond timestamp.
func QuotationNumber(now time.Time) string {
	return fmt.Sprintf("QUO-%06d", now.UnixMilli()%1_000_000)
}

// NextDocumentNumber dispatches on the document type.
func NextDocumentNumber(docType models.DocumentType, profile *models.BusinessProfile, documents []models.Document, now time.Time) string {
	if docType == models.DocumentInvoice {
		return NextInvoiceNumber(profile, documents)
	}
	return QuotationNumber(now)
}
