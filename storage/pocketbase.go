// Package storage provides store.Snapshotter backends.
package storage

import (
	"context"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/collections"
	"smartquote/store"
)

// PocketBaseSnapshotter keeps the snapshot in the app_state collection of
// the embedded PocketBase database.
type PocketBaseSnapshotter struct {
	app       core.App
	namespace string
}

func NewPocketBaseSnapshotter(app core.App, namespace string) *PocketBaseSnapshotter {
	return &PocketBaseSnapshotter{app: app, namespace: namespace}
}

func (p *PocketBaseSnapshotter) Load(context.Context) ([]byte, error) {
	record, err := collections.FindAppState(p.app, p.namespace)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, store.ErrNoSnapshot
	}
	data := collections.StateBytes(record)
	if data == nil {
		return nil, store.ErrNoSnapshot
	}
	return data, nil
}

func (p *PocketBaseSnapshotter) Save(_ context.Context, data []byte) error {
	return collections.WriteAppState(p.app, p.namespace, data)
}
