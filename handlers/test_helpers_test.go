package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/pricing"
	"smartquote/store"
	"smartquote/testhelpers"
)

const testClientID = "client-1"

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// newJSONRequest builds a request with a JSON body and the given path values.
func newJSONRequest(method, target string, body any, pathValues map[string]string) *http.Request {
	var r io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		r = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// serve runs handler against req and returns the recorder.
func serve(t *testing.T, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return v
}

// newTestStore returns an in-memory store holding the test profile and one
// client.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	clock := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s := store.New(&store.MemorySnapshotter{}, store.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	ctx := context.Background()
	if _, err := s.Dispatch(ctx, store.SetBusinessProfile{Profile: testhelpers.TestProfile()}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if _, err := s.Dispatch(ctx, store.AddClient{Client: testhelpers.TestClient(testClientID)}); err != nil {
		t.Fatalf("add client: %v", err)
	}
	return s
}

// addTestDocument stores an invoice with two items (subtotal 250) and
// returns it.
func addTestDocument(t *testing.T, s *store.Store) models.Document {
	t.Helper()

	doc := models.Document{
		ID:       "doc-1",
		Type:     models.DocumentInvoice,
		ClientID: testClientID,
		LineItems: []models.LineItem{
			{ID: "item-1", Description: "Design", Quantity: 2, UnitPrice: 100},
			{ID: "item-2", Description: "Hosting", Quantity: 1, UnitPrice: 50},
		},
		Discount: models.Discount{Type: models.DiscountPercentage, Amount: 10},
		TaxRate:  15,
	}
	st, err := s.Dispatch(context.Background(), store.AddDocument{Document: doc})
	if err != nil {
		t.Fatalf("add document: %v", err)
	}
	saved, _ := st.Document(doc.ID)
	return saved
}

func newTestEngine() *pricing.Engine {
	return pricing.NewEngine(pricing.MarketFor("us"))
}
