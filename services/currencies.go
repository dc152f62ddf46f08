package services

// Currency is a selectable document currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies is the list offered in the profile and document editors.
var Currencies = []Currency{
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound"},
	{"JPY", "¥", "Japanese Yen"},
	{"CNY", "¥", "Chinese Yuan"},
	{"AUD", "A$", "Australian Dollar"},
	{"CAD", "C$", "Canadian Dollar"},
	{"CHF", "CHF", "Swiss Franc"},
	{"INR", "₹", "Indian Rupee"},
	{"BRL", "R$", "Brazilian Real"},
	{"ZAR", "R", "South African Rand"},
	{"MXN", "MX$", "Mexican Peso"},
	{"SGD", "S$", "Singapore Dollar"},
	{"NZD", "NZ$", "New Zealand Dollar"},
	{"KRW", "₩", "South Korean Won"},
	{"SEK", "kr", "Swedish Krona"},
	{"NOK", "kr", "Norwegian Krone"},
	{"DKK", "kr", "Danish Krone"},
	{"PLN", "zł", "Polish Złoty"},
	{"THB", "฿", "Thai Baht"},
	{"IDR", "Rp", "Indonesian Rupiah"},
	{"HUF", "Ft", "Hungarian Forint"},
	{"CZK", "Kč", "Czech Koruna"},
	{"ILS", "₪", "Israeli Shekel"},
	{"CLP", "CL$", "Chilean Peso"},
	{"PHP", "₱", "Philippine Peso"},
	{"AED", "د.إ", "UAE Dirham"},
	{"SAR", "﷼", "Saudi Riyal"},
	{"MYR", "RM", "Malaysian Ringgit"},
	{"RON", "lei", "Romanian Leu"},
}

// LookupCurrency returns the currency registered for code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// CurrencySymbol returns the symbol for code, or the code itself when unknown.
func CurrencySymbol(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Symbol
	}
	return code
}

// CurrencyName returns the display name for code, or the code itself when unknown.
func CurrencyName(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Name
	}
	return code
}
