// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"smartquote/collections"
	"smartquote/models"
	"smartquote/store"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// WriteTestState stores st as the snapshot for store.Namespace.
func WriteTestState(t *testing.T, app *pocketbase.PocketBase, st store.State) {
	t.Helper()

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("failed to encode test state: %v", err)
	}
	if err := collections.WriteAppState(app, store.Namespace, data); err != nil {
		t.Fatalf("failed to write test state: %v", err)
	}
}

// ReadTestState decodes the snapshot for store.Namespace.
func ReadTestState(t *testing.T, app *pocketbase.PocketBase) store.State {
	t.Helper()

	record, err := collections.FindAppState(app, store.Namespace)
	if err != nil || record == nil {
		t.Fatalf("no state snapshot found: %v", err)
	}
	var st store.State
	if err := json.Unmarshal(collections.StateBytes(record), &st); err != nil {
		t.Fatalf("failed to decode state snapshot: %v", err)
	}
	return st
}

// TestProfile returns a complete business profile.
func TestProfile() models.BusinessProfile {
	return models.BusinessProfile{
		CompanyName:        "Acme Studio",
		Email:              "billing@acme.test",
		Phone:              "+27 21 555 0100",
		Address:            "1 Long Street",
		City:               "Cape Town",
		Country:            "South Africa",
		BankName:           "First Bank",
		AccountNumber:      "123456789",
		VATNumber:          "4123456789",
		DefaultCurrency:    "ZAR",
		InvoicePrefix:      "ACM",
		InvoiceNumberStart: 2000,
	}
}

// TestClient returns a client with the given id.
func TestClient(id string) models.Client {
	return models.Client{
		ID:       id,
		Name:     "Beta Holdings",
		Email:    "accounts@beta.test",
		Company:  "Beta Holdings (Pty) Ltd",
		City:     "Johannesburg",
		Category: models.ClientSmallBusiness,
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
