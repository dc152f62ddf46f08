package services

import "smartquote/models"

// ComputeTotals derives the document totals from its line items, discount and
// tax rate:
//
//	subtotal       = Σ item.Total
//	discountAmount = subtotal*amount/100 (percentage) or amount (fixed)
//	taxAmount      = (subtotal - discountAmount) * taxRate / 100
//	total          = subtotal - discountAmount + taxAmount
//
// Nothing is clamped or rounded here. A fixed discount larger than the
// subtotal yields a negative taxable base; the store rejects that on save.
func ComputeTotals(items []models.LineItem, discount models.Discount, taxRate float64) models.DocumentTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}

	var discountAmount float64
	if discount.Type == models.DiscountPercentage {
		discountAmount = subtotal * discount.Amount / 100
	} else {
		discountAmount = discount.Amount
	}

	afterDiscount := subtotal - discountAmount
	taxAmount := afterDiscount * taxRate / 100

	return models.DocumentTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          afterDiscount + taxAmount,
	}
}

// DocumentTotals is a convenience wrapper around ComputeTotals.
func DocumentTotals(doc models.Document) models.DocumentTotals {
	return ComputeTotals(doc.LineItems, doc.Discount, doc.TaxRate)
}

// InclusiveTotal is the per-row total including tax. It is a display value
// only and is not part of DocumentTotals.
func InclusiveTotal(item models.LineItem, taxRate float64) float64 {
	return item.Total * (1 + taxRate/100)
}

// EffectiveDiscountPercent expresses the document discount as a percentage of
// the subtotal, for the "Disc %" header field on exports.
func EffectiveDiscountPercent(t models.DocumentTotals) float64 {
	if t.Subtotal == 0 {
		return 0
	}
	return t.DiscountAmount / t.Subtotal * 100
}
