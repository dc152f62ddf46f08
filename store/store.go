package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"smartquote/services"
)

// Store serialises actions against the current state. Every successful
// action is persisted before it becomes visible.
type Store struct {
	mu     sync.RWMutex
	state  State
	snap   Snapshotter
	logger *slog.Logger
	now    func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a store seeded with DefaultState. Call Load to read the
// persisted snapshot.
func New(snap Snapshotter, opts ...Option) *Store {
	s := &Store{snap: snap, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.state = DefaultState(s.now())
	return s
}

// Load replaces the in-memory state with the stored snapshot. A missing
// snapshot leaves the seed state in place.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.snap.Load(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		s.logger.Info("store: no snapshot, starting from defaults", "namespace", Namespace)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.logger.Info("store: snapshot loaded",
		"clients", len(st.Clients), "documents", len(st.Documents), "ratePresets", len(st.RatePresets))
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Dispatch reduces action against the current state and persists the
// result. If the action is rejected or the save fails the state is
// unchanged and the error is returned.
func (s *Store) Dispatch(ctx context.Context, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, action, s.now())
	if err != nil {
		return State{}, err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return State{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.snap.Save(ctx, data); err != nil {
		s.logger.Error("store: save failed, change discarded", "action", fmt.Sprintf("%T", action), "error", err)
		return State{}, fmt.Errorf("save snapshot: %w", err)
	}

	s.state = next
	return next.clone(), nil
}

// NextInvoiceNumber previews the number the next invoice will get.
func (s *Store) NextInvoiceNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return services.NextInvoiceNumber(s.state.BusinessProfile, s.state.Documents)
}
