package pricing

import "errors"

// Parse failure reasons. All of them send the engine to the local estimate.
var (
	ErrNoJSON           = errors.New("no JSON object in response")
	ErrMalformedJSON    = errors.New("malformed JSON in response")
	ErrMissingPrice     = errors.New("recommendedPrice missing or not a positive number")
	ErrMissingBreakdown = errors.New("costBreakdown missing or empty")
	ErrInvalidBreakdown = errors.New("costBreakdown entry has a negative or non-finite amount")
)
