// Package models holds the domain types shared by the totals engine, the
// pricing engine, the state container and the export layer.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how Discount.Amount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is applied to the pre-discount subtotal of a document.
type Discount struct {
	Amount float64      `json:"amount"`
	Type   DiscountType `json:"type"`
}

// LineItem is one billable row. Total must equal Quantity*UnitPrice; use the
// setters below when editing so the invariant holds.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// NewLineItem returns a line item with a fresh id and a consistent total.
func NewLineItem(description string, quantity, unitPrice float64) LineItem {
	return LineItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       quantity * unitPrice,
	}
}

// SetQuantity updates the quantity and recomputes the total.
func (li *LineItem) SetQuantity(q float64) {
	li.Quantity = q
	li.Recalculate()
}

// SetUnitPrice updates the unit price and recomputes the total.
func (li *LineItem) SetUnitPrice(p float64) {
	li.UnitPrice = p
	li.Recalculate()
}

// Recalculate restores Total = Quantity * UnitPrice.
func (li *LineItem) Recalculate() {
	li.Total = li.Quantity * li.UnitPrice
}

// DocumentTotals is derived from a document's line items, discount and tax
// rate. It is never persisted.
type DocumentTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
}

// AfterDiscount is the taxable base.
func (t DocumentTotals) AfterDiscount() float64 {
	return t.Subtotal - t.DiscountAmount
}

type DocumentType string

const (
	DocumentQuotation DocumentType = "quotation"
	DocumentInvoice   DocumentType = "invoice"
)

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusSent      DocumentStatus = "sent"
	StatusPaid      DocumentStatus = "paid"
	StatusCancelled DocumentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Document is a quotation or an invoice. Totals are not stored on it;
// callers compute them with services.ComputeTotals on every read.
type Document struct {
	ID               string          `json:"id"`
	Type             DocumentType    `json:"type"`
	Status           DocumentStatus  `json:"status"`
	DocumentNumber   string          `json:"documentNumber"`
	Reference        string          `json:"reference,omitempty"`
	SalesRep         string          `json:"salesRep,omitempty"`
	ClientID         string          `json:"clientId"`
	LineItems        []LineItem      `json:"lineItems"`
	Discount         Discount        `json:"discount"`
	TaxRate          float64         `json:"taxRate"`
	Currency         string          `json:"currency"`
	Notes            string          `json:"notes,omitempty"`
	Terms            string          `json:"terms,omitempty"`
	PaymentTerms     string          `json:"paymentTerms,omitempty"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	IssueDate        time.Time       `json:"issueDate"`
	AIRecommendation *Recommendation `json:"aiRecommendation,omitempty"`
	TeamMembers      []TeamMember    `json:"teamMembers,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// FindLineItem returns the index of the line item with the given id, or -1.
func (d *Document) FindLineItem(id string) int {
	for i := range d.LineItems {
		if d.LineItems[i].ID == id {
			return i
		}
	}
	return -1
}
