package services

import (
	"math"
	"strings"
)

// AmountToWords spells out the whole-unit part of an amount followed by the
// currency name, using short-scale grouping.
// Example: 1234567, "South African Rand" →
// "One Million Two Hundred and Thirty Four Thousand Five Hundred and Sixty Seven South African Rand Only"
func AmountToWords(amount float64, currencyName string) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount, currencyName)
	}

	units := int64(math.Round(amount))
	suffix := " Only"
	if currencyName != "" {
		suffix = " " + currencyName + " Only"
	}

	if units == 0 {
		return "Zero" + suffix
	}
	return convertToWords(units) + suffix
}

var scales = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "Trillion"},
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

func convertToWords(n int64) string {
	var parts []string

	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, convertUnder1000(n/s.value)+" "+s.name)
			n %= s.value
		}
	}

	if n > 0 {
		parts = append(parts, convertUnder1000(n))
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}
	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
