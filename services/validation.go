package services

import (
	"errors"

	"smartquote/models"
)

// Input-incomplete errors. Handlers surface these as a blocking message and
// produce no document.
var (
	ErrMissingBusinessProfile = errors.New("business profile is required")
	ErrMissingClient          = errors.New("client is required")
	ErrNoLineItems            = errors.New("at least one line item is required")
)

// ValidateForSave checks what a document needs before it may be stored.
func ValidateForSave(profile *models.BusinessProfile, client *models.Client, doc models.Document) error {
	if profile == nil || profile.CompanyName == "" {
		return ErrMissingBusinessProfile
	}
	if client == nil {
		return ErrMissingClient
	}
	if len(doc.LineItems) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// ValidateForExport checks what a document needs before it may be rendered.
// Line items are not required: an empty quotation still prints.
func ValidateForExport(profile *models.BusinessProfile, client *models.Client) error {
	if profile == nil || profile.CompanyName == "" {
		return ErrMissingBusinessProfile
	}
	if client == nil {
		return ErrMissingClient
	}
	return nil
}

// IsInputIncomplete reports whether err is one of the input-incomplete errors.
func IsInputIncomplete(err error) bool {
	return errors.Is(err, ErrMissingBusinessProfile) ||
		errors.Is(err, ErrMissingClient) ||
		errors.Is(err, ErrNoLineItems) ||
		errors.Is(err, models.ErrInvalidProjectInput)
}
