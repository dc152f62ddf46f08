package store

import (
	"fmt"
	"time"

	"smartquote/models"
	"smartquote/services"
)

// Reduce applies action to a copy of state. The input is never modified; on
// error the returned state is the zero value.
func Reduce(state State, action Action, now time.Time) (State, error) {
	next := state.clone()
	if err := action.apply(&next, now); err != nil {
		return State{}, err
	}
	return next, nil
}

func (s *State) documentIndex(id string) int {
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return i
		}
	}
	return -1
}

// document returns a pointer into s.Documents for in-place edits.
func (s *State) document(id string) (*models.Document, error) {
	i := s.documentIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("document %q: %w", id, ErrNotFound)
	}
	return &s.Documents[i], nil
}

// prepareDocument restores item totals and checks the document-level
// fields a reducer must never accept.
func prepareDocument(d *models.Document) error {
	if !d.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	for i := range d.LineItems {
		if err := checkLineItem(d.LineItems[i]); err != nil {
			return err
		}
		d.LineItems[i].Recalculate()
	}
	return checkDiscount(*d)
}

func checkLineItem(li models.LineItem) error {
	if li.Quantity < 0 || li.UnitPrice < 0 {
		return fmt.Errorf("%w: quantity and unit price must not be negative", ErrInvalidLineItem)
	}
	return nil
}

// checkDiscount rejects a negative discount, a percentage over 100 and a
// fixed amount over the subtotal.
func checkDiscount(d models.Document) error {
	disc := d.Discount
	if disc.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidDiscount)
	}
	switch disc.Type {
	case models.DiscountPercentage:
		if disc.Amount > 100 {
			return fmt.Errorf("%w: percentage above 100", ErrInvalidDiscount)
		}
	case models.DiscountFixed, "":
		if subtotal := services.DocumentTotals(d).Subtotal; disc.Amount > subtotal {
			return fmt.Errorf("%w: fixed amount %.2f exceeds subtotal %.2f", ErrInvalidDiscount, disc.Amount, subtotal)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, disc.Type)
	}
	return nil
}
