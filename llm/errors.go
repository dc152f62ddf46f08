package llm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrMissingAPIKey   = errors.New("llm api key is required")
	ErrEmptyResponse   = errors.New("llm returned no content")
)

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s api error: status %d: %s", e.Provider, e.StatusCode, e.Body)
}
