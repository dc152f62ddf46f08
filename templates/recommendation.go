package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"smartquote/models"
	"smartquote/services"
)

// RecommendationCard renders a pricing recommendation with its breakdown
// table and suggested team.
func RecommendationCard(rec models.Recommendation) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		esc := templ.EscapeString[string]
		money := func(v float64) string { return esc(services.FormatCurrency(rec.Currency, v)) }

		sourceLabel := "Algorithmic estimate"
		if rec.Source == models.SourceAI {
			sourceLabel = "AI analysis"
			if rec.Provider != "" {
				sourceLabel += " (" + rec.Provider + ")"
			}
		}

		fmt.Fprintf(&b, `<div id="recommendation" class="recommendation-card" data-source="%s">`, esc(string(rec.Source)))
		fmt.Fprintf(&b, `<div class="recommendation-header"><span class="badge">%s</span>`, esc(sourceLabel))
		fmt.Fprintf(&b, `<h3 class="recommendation-price">%s</h3>`, money(rec.TotalPrice))
		fmt.Fprintf(&b, `<p class="recommendation-meta">Profit margin %s · Confidence %s</p></div>`,
			esc(services.FormatPercent(rec.ProfitMargin)), esc(services.FormatPercent(rec.Confidence)))

		if len(rec.Breakdown) > 0 {
			b.WriteString(`<table class="recommendation-breakdown"><thead><tr><th>Item</th><th>Qty</th><th>Rate</th><th>Total</th></tr></thead><tbody>`)
			for _, li := range rec.Breakdown {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(li.Description), esc(fmt.Sprintf("%g", li.Quantity)), money(li.UnitPrice), money(li.Total))
			}
			b.WriteString(`</tbody></table>`)
		}

		if len(rec.TeamSuggestions) > 0 {
			b.WriteString(`<ul class="recommendation-team">`)
			for _, m := range rec.TeamSuggestions {
				fmt.Fprintf(&b, `<li>%s %s · %sh · %s</li>`,
					esc(string(m.Level)), esc(string(m.Role)), esc(fmt.Sprintf("%g", m.EstimatedHours)),
					esc(services.FormatPercent(m.ContributionPercentage)))
			}
			b.WriteString(`</ul>`)
		}

		if rec.Reasoning != "" {
			fmt.Fprintf(&b, `<div class="recommendation-reasoning">%s</div>`,
				strings.ReplaceAll(esc(rec.Reasoning), "\n", "<br>"))
		}
		if rec.MarketInsights != "" {
			fmt.Fprintf(&b, `<div class="recommendation-insights">%s</div>`, esc(rec.MarketInsights))
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
