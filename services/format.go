package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds half away from zero to two decimals. It is only applied
// at presentation boundaries; stored and computed amounts stay unrounded.
func RoundMoney(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// FormatMoney formats an amount with the given currency symbol, thousands
// separators and exactly 2 decimal places (e.g. R1,234,567.80).
func FormatMoney(symbol string, amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	raw := d.StringFixed(2)
	parts := strings.SplitN(raw, ".", 2)
	result := symbol + applyThousandsGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatCurrency formats an amount using the symbol registered for code.
func FormatCurrency(code string, amount float64) string {
	return FormatMoney(CurrencySymbol(code), amount)
}

// applyThousandsGrouping inserts commas every 3 digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatQty drops the decimals for whole quantities.
func formatQty(q float64) string {
	d := decimal.NewFromFloat(q)
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return d.Round(2).String()
}

// FormatPercent renders a rate such as 15 or 7.5 as "15%" / "7.5%".
func FormatPercent(p float64) string {
	return decimal.NewFromFloat(p).Round(2).String() + "%"
}
