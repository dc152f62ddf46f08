package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

const (
	// AppState holds one JSON state snapshot per namespace.
	AppState = "app_state"

	FieldNamespace = "namespace"
	FieldState     = "state"

	// logos are stored inline as data URLs
	maxStateSize = 20 << 20
)

// Setup programmatically creates/ensures the app_state collection exists.
func Setup(app core.App) {
	ensureCollection(app, AppState, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: FieldNamespace, Required: true})
		c.Fields.Add(&core.JSONField{Name: FieldState, MaxSize: maxStateSize})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_app_state_namespace", true, FieldNamespace, "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app core.App, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// FindAppState returns the snapshot record for namespace, or nil when none
// has been written yet.
func FindAppState(app core.App, namespace string) (*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		AppState,
		"namespace = {:namespace}",
		"", 1, 0,
		map[string]any{"namespace": namespace},
	)
	if err != nil {
		return nil, fmt.Errorf("find %s %q: %w", AppState, namespace, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// StateBytes returns the raw JSON held by a snapshot record. An empty or
// null field yields nil.
func StateBytes(record *core.Record) []byte {
	var raw []byte
	switch v := record.Get(FieldState).(type) {
	case types.JSONRaw:
		raw = v
	case []byte:
		raw = v
	default:
		raw = []byte(record.GetString(FieldState))
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// WriteAppState creates or updates the snapshot record for namespace.
func WriteAppState(app core.App, namespace string, data []byte) error {
	record, err := FindAppState(app, namespace)
	if err != nil {
		return err
	}
	if record == nil {
		col, err := app.FindCollectionByNameOrId(AppState)
		if err != nil {
			return fmt.Errorf("could not find %s collection: %w", AppState, err)
		}
		record = core.NewRecord(col)
		record.Set(FieldNamespace, namespace)
	}
	record.Set(FieldState, types.JSONRaw(data))
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save %s %q: %w", AppState, namespace, err)
	}
	return nil
}
