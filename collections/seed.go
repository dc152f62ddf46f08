package collections

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/store"
)

// Seed writes the default state (rate presets, no profile or documents)
// under store.Namespace. It is safe to call on every startup because it
// returns early if a snapshot already exists.
func Seed(app core.App) error {
	existing, err := FindAppState(app, store.Namespace)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing != nil {
		return nil // already seeded
	}

	log.Println("seed: no saved state – writing default rate presets …")

	data, err := json.Marshal(store.DefaultState(time.Now()))
	if err != nil {
		return fmt.Errorf("seed: encode default state: %w", err)
	}
	if err := WriteAppState(app, store.Namespace, data); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Println("seed: default state written.")
	return nil
}
