// Package templates holds the HTMX partials served by the handlers.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"smartquote/models"
	"smartquote/services"
)

// TotalsSummaryData feeds the live totals box on the document editor.
type TotalsSummaryData struct {
	Currency string
	Totals   models.DocumentTotals
	Discount models.Discount
	TaxRate  float64
}

// TotalsSummary renders the subtotal, discount, tax and total rows. The
// discount row is left out when nothing is discounted.
func TotalsSummary(data TotalsSummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		money := func(v float64) string {
			return templ.EscapeString(services.FormatCurrency(data.Currency, v))
		}

		discountLabel := "Discount"
		if data.Discount.Type == models.DiscountPercentage && data.Discount.Amount > 0 {
			discountLabel = fmt.Sprintf("Discount (%s)", services.FormatPercent(data.Discount.Amount))
		}

		type row struct {
			label, value, class string
		}
		rows := []row{{"Subtotal", money(data.Totals.Subtotal), "totals-subtotal"}}
		if data.Totals.DiscountAmount != 0 {
			rows = append(rows, row{discountLabel, "-" + money(data.Totals.DiscountAmount), "totals-discount"})
		}
		rows = append(rows,
			row{fmt.Sprintf("VAT (%s)", services.FormatPercent(data.TaxRate)), money(data.Totals.TaxAmount), "totals-tax"},
			row{"Total", money(data.Totals.Total), "totals-total"},
		)

		if _, err := io.WriteString(w, `<div id="totals-summary" class="totals-summary">`); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, `<div class="totals-row %s"><span class="label">%s</span><span class="value">%s</span></div>`,
				r.class, templ.EscapeString(r.label), r.value); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
