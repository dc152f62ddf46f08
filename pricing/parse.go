package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Analysis is a validated provider reply.
type Analysis struct {
	RecommendedPrice           float64
	Reasoning                  string
	CostBreakdown              []CostEntry
	MarketInsights             string
	ProfitMarginRecommendation float64
	Confidence                 float64
}

// CostEntry is one row of the provider's cost breakdown. For feature-based
// pricing Role holds the feature name and Hours is 0.
type CostEntry struct {
	Role          string  `json:"role"`
	Hours         float64 `json:"hours"`
	Rate          float64 `json:"rate"`
	Total         float64 `json:"total"`
	Justification string  `json:"justification"`
}

// rawAnalysis defers decoding so each field can fail with its own reason.
type rawAnalysis struct {
	RecommendedPrice           json.RawMessage `json:"recommendedPrice"`
	Reasoning                  json.RawMessage `json:"reasoning"`
	CostBreakdown              json.RawMessage `json:"costBreakdown"`
	MarketInsights             json.RawMessage `json:"marketInsights"`
	ProfitMarginRecommendation json.RawMessage `json:"profitMarginRecommendation"`
	Confidence                 json.RawMessage `json:"confidence"`
}

// ParseAnalysis extracts and validates the JSON object in a provider reply.
// The error, when non-nil, wraps one of ErrNoJSON, ErrMalformedJSON,
// ErrMissingPrice, ErrMissingBreakdown or ErrInvalidBreakdown.
func ParseAnalysis(text string) (*Analysis, error) {
	obj, ok := ExtractJSON(text)
	if !ok {
		return nil, ErrNoJSON
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var a Analysis
	price, ok := decodeNumber(raw.RecommendedPrice)
	if !ok || price <= 0 {
		return nil, ErrMissingPrice
	}
	a.RecommendedPrice = price

	if len(raw.CostBreakdown) == 0 {
		return nil, ErrMissingBreakdown
	}
	if err := json.Unmarshal(raw.CostBreakdown, &a.CostBreakdown); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingBreakdown, err)
	}
	if len(a.CostBreakdown) == 0 {
		return nil, ErrMissingBreakdown
	}
	for i := range a.CostBreakdown {
		e := &a.CostBreakdown[i]
		if !validAmount(e.Hours) || !validAmount(e.Rate) || !validAmount(e.Total) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBreakdown, e.Role)
		}
		if e.Total == 0 && e.Hours > 0 && e.Rate > 0 {
			e.Total = e.Hours * e.Rate
		}
	}

	a.Reasoning = decodeString(raw.Reasoning)
	a.MarketInsights = decodeString(raw.MarketInsights)
	a.ProfitMarginRecommendation, _ = decodeNumber(raw.ProfitMarginRecommendation)
	a.Confidence, _ = decodeNumber(raw.Confidence)

	return &a, nil
}

// validAmount reports whether f can stand as an hour count, rate or total.
func validAmount(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ExtractJSON returns the first balanced {...} substring of text. Braces
// inside JSON strings are ignored. If an opening brace is never closed the
// search resumes at the next one.
func ExtractJSON(text string) (string, bool) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := matchBrace(text, start); end > 0 {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// matchBrace returns the index of the brace closing the one at start, or -1.
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
