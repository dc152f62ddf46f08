// Package store holds the application state and applies every change to it
// as a typed action, persisting one JSON snapshot after each change.
package store

import "smartquote/models"

// State is everything the application persists.
type State struct {
	BusinessProfile *models.BusinessProfile `json:"businessProfile"`
	Clients         []models.Client         `json:"clients"`
	RatePresets     []models.RatePreset     `json:"ratePresets"`
	Documents       []models.Document       `json:"documents"`
	AIConfig        models.AIConfig         `json:"aiConfig"`
}

// Client returns the client with id.
func (s State) Client(id string) (*models.Client, bool) {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			c := s.Clients[i]
			return &c, true
		}
	}
	return nil, false
}

// Document returns a copy of the document with id.
func (s State) Document(id string) (models.Document, bool) {
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return cloneDocument(s.Documents[i]), true
		}
	}
	return models.Document{}, false
}

// RatePreset returns the preset with id.
func (s State) RatePreset(id string) (models.RatePreset, bool) {
	for _, r := range s.RatePresets {
		if r.ID == id {
			return r, true
		}
	}
	return models.RatePreset{}, false
}

// clone deep-copies everything a reducer may modify in place.
func (s State) clone() State {
	out := State{AIConfig: s.AIConfig}
	if s.BusinessProfile != nil {
		p := *s.BusinessProfile
		out.BusinessProfile = &p
	}
	out.Clients = cloneSlice(s.Clients)
	out.RatePresets = cloneSlice(s.RatePresets)
	if s.Documents != nil {
		out.Documents = make([]models.Document, len(s.Documents))
		for i, d := range s.Documents {
			out.Documents[i] = cloneDocument(d)
		}
	}
	return out
}

func cloneDocument(d models.Document) models.Document {
	d.LineItems = cloneSlice(d.LineItems)
	d.TeamMembers = cloneSlice(d.TeamMembers)
	if d.DueDate != nil {
		due := *d.DueDate
		d.DueDate = &due
	}
	if d.AIRecommendation != nil {
		rec := *d.AIRecommendation
		rec.Breakdown = cloneSlice(rec.Breakdown)
		rec.TeamSuggestions = cloneSlice(rec.TeamSuggestions)
		d.AIRecommendation = &rec
	}
	return d
}

// cloneSlice copies s, keeping nil and empty distinct so JSON output is stable.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
