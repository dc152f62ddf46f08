package store

import (
	"context"
	"sync"
)

// Namespace is the key the state snapshot is stored under.
const Namespace = "smartquote-storage"

// Snapshotter persists the serialized state. Load returns ErrNoSnapshot when
// nothing has been saved yet.
type Snapshotter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemorySnapshotter keeps the snapshot in memory.
type MemorySnapshotter struct {
	mu   sync.Mutex
	data []byte
	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

func (m *MemorySnapshotter) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSnapshot
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySnapshotter) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}
