package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartquote/models"
	"smartquote/services"
)

// Action is one state change. Implementations live in this package only.
type Action interface {
	apply(s *State, now time.Time) error
}

// SetBusinessProfile replaces the business profile.
type SetBusinessProfile struct {
	Profile models.BusinessProfile
}

func (a SetBusinessProfile) apply(s *State, now time.Time) error {
	p := a.Profile
	if s.BusinessProfile != nil {
		p.ID = s.BusinessProfile.ID
		p.CreatedAt = s.BusinessProfile.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.BusinessProfile = &p
	return nil
}

// AddClient appends a client. An empty ID is filled in.
type AddClient struct {
	Client models.Client
}

func (a AddClient) apply(s *State, now time.Time) error {
	c := a.Client
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt, c.UpdatedAt = now, now
	s.Clients = append(s.Clients, c)
	return nil
}

// UpdateClient replaces the client with the same ID.
type UpdateClient struct {
	Client models.Client
}

func (a UpdateClient) apply(s *State, now time.Time) error {
	for i := range s.Clients {
		if s.Clients[i].ID == a.Client.ID {
			c := a.Client
			c.CreatedAt = s.Clients[i].CreatedAt
			c.UpdatedAt = now
			s.Clients[i] = c
			return nil
		}
	}
	return fmt.Errorf("client %q: %w", a.Client.ID, ErrNotFound)
}

// DeleteClient removes a client. Documents addressed to it are kept.
type DeleteClient struct {
	ID string
}

func (a DeleteClient) apply(s *State, _ time.Time) error {
	for i := range s.Clients {
		if s.Clients[i].ID == a.ID {
			s.Clients = append(s.Clients[:i], s.Clients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("client %q: %w", a.ID, ErrNotFound)
}

// AddRatePreset appends a rate preset. An empty ID is filled in.
type AddRatePreset struct {
	Preset models.RatePreset
}

func (a AddRatePreset) apply(s *State, now time.Time) error {
	r := a.Preset
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.CreatedAt, r.UpdatedAt = now, now
	s.RatePresets = append(s.RatePresets, r)
	return nil
}

// UpdateRatePreset replaces the preset with the same ID.
type UpdateRatePreset struct {
	Preset models.RatePreset
}

func (a UpdateRatePreset) apply(s *State, now time.Time) error {
	for i := range s.RatePresets {
		if s.RatePresets[i].ID == a.Preset.ID {
			r := a.Preset
			r.CreatedAt = s.RatePresets[i].CreatedAt
			r.UpdatedAt = now
			s.RatePresets[i] = r
			return nil
		}
	}
	return fmt.Errorf("rate preset %q: %w", a.Preset.ID, ErrNotFound)
}

// DeleteRatePreset removes the preset with the given ID.
type DeleteRatePreset struct {
	ID string
}

func (a DeleteRatePreset) apply(s *State, _ time.Time) error {
	for i := range s.RatePresets {
		if s.RatePresets[i].ID == a.ID {
			s.RatePresets = append(s.RatePresets[:i], s.RatePresets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("rate preset %q: %w", a.ID, ErrNotFound)
}

// AddDocument appends a document. Missing ID, status, issue date, currency
// and document number are filled in; line item totals are recomputed.
type AddDocument struct {
	Document models.Document
}

func (a AddDocument) apply(s *State, now time.Time) error {
	d := cloneDocument(a.Document)
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Type != models.DocumentInvoice {
		d.Type = models.DocumentQuotation
	}
	if d.Status == "" {
		d.Status = models.StatusDraft
	}
	if d.IssueDate.IsZero() {
		d.IssueDate = now
	}
	if d.Currency == "" && s.BusinessProfile != nil {
		d.Currency = s.BusinessProfile.DefaultCurrency
	}
	if d.DocumentNumber == "" {
		d.DocumentNumber = services.NextDocumentNumber(d.Type, s.BusinessProfile, s.Documents, now)
	}
	if err := prepareDocument(&d); err != nil {
		return err
	}
	d.CreatedAt, d.UpdatedAt = now, now
	s.Documents = append(s.Documents, d)
	return nil
}

// UpdateDocument replaces the document with the same ID. Its creation time
// and type are kept.
type UpdateDocument struct {
	Document models.Document
}

func (a UpdateDocument) apply(s *State, now time.Time) error {
	i := s.documentIndex(a.Document.ID)
	if i < 0 {
		return fmt.Errorf("document %q: %w", a.Document.ID, ErrNotFound)
	}
	d := cloneDocument(a.Document)
	d.Type = s.Documents[i].Type
	d.CreatedAt = s.Documents[i].CreatedAt
	if d.DocumentNumber == "" {
		d.DocumentNumber = s.Documents[i].DocumentNumber
	}
	if d.IssueDate.IsZero() {
		d.IssueDate = s.Documents[i].IssueDate
	}
	if d.Status == "" {
		d.Status = s.Documents[i].Status
	}
	if err := prepareDocument(&d); err != nil {
		return err
	}
	d.UpdatedAt = now
	s.Documents[i] = d
	return nil
}

// DeleteDocument removes the document with the given ID.
type DeleteDocument struct {
	ID string
}

func (a DeleteDocument) apply(s *State, _ time.Time) error {
	i := s.documentIndex(a.ID)
	if i < 0 {
		return fmt.Errorf("document %q: %w", a.ID, ErrNotFound)
	}
	s.Documents = append(s.Documents[:i], s.Documents[i+1:]...)
	return nil
}

// AddLineItem appends an item to a document. An empty item ID is filled in.
type AddLineItem struct {
	DocumentID string
	Item       models.LineItem
}

func (a AddLineItem) apply(s *State, now time.Time) error {
	d, err := s.document(a.DocumentID)
	if err != nil {
		return err
	}
	item := a.Item
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := checkLineItem(item); err != nil {
		return err
	}
	item.Recalculate()
	d.LineItems = append(d.LineItems, item)
	if err := checkDiscount(*d); err != nil {
		return err
	}
	d.UpdatedAt = now
	return nil
}

// UpdateLineItem patches the fields that are non-nil. A lower price or
// quantity that leaves a fixed discount above the subtotal is rejected.
type UpdateLineItem struct {
	DocumentID  string
	ItemID      string
	Description *string
	Quantity    *float64
	UnitPrice   *float64
}

func (a UpdateLineItem) apply(s *State, now time.Time) error {
	d, err := s.document(a.DocumentID)
	if err != nil {
		return err
	}
	i := d.FindLineItem(a.ItemID)
	if i < 0 {
		return fmt.Errorf("line item %q: %w", a.ItemID, ErrNotFound)
	}

	item := d.LineItems[i]
	if a.Description != nil {
		item.Description = *a.Description
	}
	if a.Quantity != nil {
		item.SetQuantity(*a.Quantity)
	}
	if a.UnitPrice != nil {
		item.SetUnitPrice(*a.UnitPrice)
	}
	if err := checkLineItem(item); err != nil {
		return err
	}
	d.LineItems[i] = item
	if err := checkDiscount(*d); err != nil {
		return err
	}
	d.UpdatedAt = now
	return nil
}

// DeleteLineItem removes one item from a document. It fails when the
// remaining subtotal no longer covers a fixed discount.
type DeleteLineItem struct {
	DocumentID string
	ItemID     string
}

func (a DeleteLineItem) apply(s *State, now time.Time) error {
	d, err := s.document(a.DocumentID)
	if err != nil {
		return err
	}
	i := d.FindLineItem(a.ItemID)
	if i < 0 {
		return fmt.Errorf("line item %q: %w", a.ItemID, ErrNotFound)
	}
	d.LineItems = append(d.LineItems[:i], d.LineItems[i+1:]...)
	if err := checkDiscount(*d); err != nil {
		return err
	}
	d.UpdatedAt = now
	return nil
}

// AttachRecommendation stores a recommendation and its team on a document.
// With AppendBreakdown the breakdown lines are also added as line items.
type AttachRecommendation struct {
	DocumentID      string
	Recommendation  models.Recommendation
	AppendBreakdown bool
}

func (a AttachRecommendation) apply(s *State, now time.Time) error {
	d, err := s.document(a.DocumentID)
	if err != nil {
		return err
	}
	rec := a.Recommendation
	rec.Breakdown = cloneSlice(rec.Breakdown)
	rec.TeamSuggestions = cloneSlice(rec.TeamSuggestions)
	d.AIRecommendation = &rec
	d.TeamMembers = cloneSlice(rec.TeamSuggestions)

	if a.AppendBreakdown {
		for _, li := range rec.Breakdown {
			item := models.NewLineItem(li.Description, li.Quantity, li.UnitPrice)
			if err := checkLineItem(item); err != nil {
				return fmt.Errorf("breakdown %q: %w", li.Description, err)
			}
			d.LineItems = append(d.LineItems, item)
		}
	}
	if err := checkDiscount(*d); err != nil {
		return err
	}
	d.UpdatedAt = now
	return nil
}

// SetAIConfig replaces the user's provider settings.
type SetAIConfig struct {
	Config models.AIConfig
}

func (a SetAIConfig) apply(s *State, _ time.Time) error {
	s.AIConfig = a.Config
	return nil
}
