package collections

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/store"
)

// MigrateSnapshot repairs documents written by older builds: missing ids,
// type or status, and line items whose total drifted from qty × price.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateSnapshot(app core.App, namespace string) error {
	record, err := FindAppState(app, namespace)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if record == nil {
		return nil
	}
	raw := StateBytes(record)
	if raw == nil {
		return nil
	}

	var st store.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return fmt.Errorf("migrate: could not decode %s %q: %w", AppState, namespace, err)
	}

	fixed := 0
	for i := range st.Documents {
		fixed += repairDocument(&st.Documents[i])
	}
	if fixed == 0 {
		return nil
	}

	log.Printf("migrate: repairing %d field(s) across %d document(s)...\n", fixed, len(st.Documents))

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("migrate: encode state: %w", err)
	}
	if err := WriteAppState(app, namespace, data); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Println("migrate: snapshot repair complete.")
	return nil
}

// repairDocument fixes d in place and reports how many fields changed.
func repairDocument(d *models.Document) int {
	n := 0
	if d.ID == "" {
		d.ID = uuid.NewString()
		n++
	}
	if d.Type != models.DocumentInvoice && d.Type != models.DocumentQuotation {
		d.Type = models.DocumentQuotation
		n++
	}
	if !d.Status.Valid() {
		d.Status = models.StatusDraft
		n++
	}
	for i := range d.LineItems {
		li := &d.LineItems[i]
		if li.ID == "" {
			li.ID = uuid.NewString()
			n++
		}
		if li.Total != li.Quantity*li.UnitPrice {
			li.Recalculate()
			n++
		}
	}
	return n
}
