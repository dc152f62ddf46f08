package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/services"
	"smartquote/store"
	"smartquote/templates"
)

type lineItemPatch struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
}

// respondDocument answers a line item change with the updated document, or
// with the totals partial when HTMX asked.
func respondDocument(e *core.RequestEvent, status int, doc models.Document) error {
	if isHTMX(e) {
		return renderTotals(e, doc.Currency, doc.LineItems, doc.Discount, doc.TaxRate)
	}
	return e.JSON(status, viewOf(doc))
}

func renderTotals(e *core.RequestEvent, currency string, items []models.LineItem, discount models.Discount, taxRate float64) error {
	component := templates.TotalsSummary(templates.TotalsSummaryData{
		Currency: currency,
		Totals:   services.ComputeTotals(items, discount, taxRate),
		Discount: discount,
		TaxRate:  taxRate,
	})
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(e.Request.Context(), e.Response)
}

func HandleLineItemAdd(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docID := e.Request.PathValue("id")

		var item models.LineItem
		if err := e.BindBody(&item); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid line item data")
		}
		item.ID = ""

		st, err := s.Dispatch(e.Request.Context(), store.AddLineItem{DocumentID: docID, Item: item})
		if err != nil {
			return respondError(e, "line_items: HandleLineItemAdd", err)
		}
		doc, _ := st.Document(docID)
		return respondDocument(e, http.StatusCreated, doc)
	}
}

// HandleLineItemUpdate patches description, quantity or unit price. The row
// total is recomputed.
func HandleLineItemUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docID := e.Request.PathValue("id")

		var patch lineItemPatch
		if err := e.BindBody(&patch); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid line item data")
		}

		st, err := s.Dispatch(e.Request.Context(), store.UpdateLineItem{
			DocumentID:  docID,
			ItemID:      e.Request.PathValue("itemId"),
			Description: patch.Description,
			Quantity:    patch.Quantity,
			UnitPrice:   patch.UnitPrice,
		})
		if err != nil {
			return respondError(e, "line_items: HandleLineItemUpdate", err)
		}
		doc, _ := st.Document(docID)
		return respondDocument(e, http.StatusOK, doc)
	}
}

func HandleLineItemDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docID := e.Request.PathValue("id")
		st, err := s.Dispatch(e.Request.Context(), store.DeleteLineItem{
			DocumentID: docID,
			ItemID:     e.Request.PathValue("itemId"),
		})
		if err != nil {
			return respondError(e, "line_items: HandleLineItemDelete", err)
		}
		doc, _ := st.Document(docID)
		return respondDocument(e, http.StatusOK, doc)
	}
}

type totalsRequest struct {
	Currency  string            `json:"currency"`
	LineItems []models.LineItem `json:"lineItems"`
	Discount  models.Discount   `json:"discount"`
	TaxRate   float64           `json:"taxRate"`
}

// HandleTotalsPreview computes totals for an unsaved editor state. Item
// totals are recomputed from quantity and unit price before summing.
func HandleTotalsPreview() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req totalsRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid totals request")
		}
		for i := range req.LineItems {
			req.LineItems[i].Recalculate()
		}

		if isHTMX(e) {
			return renderTotals(e, req.Currency, req.LineItems, req.Discount, req.TaxRate)
		}
		return e.JSON(http.StatusOK, services.ComputeTotals(req.LineItems, req.Discount, req.TaxRate))
	}
}
