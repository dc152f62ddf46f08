package handlers

import (
	"net/http"
	"testing"

	"smartquote/models"
	"smartquote/testhelpers"
)

func validProjectInput() map[string]any {
	return map[string]any{
		"clientCategory":    "small-business",
		"projectSize":       "medium",
		"complexity":        "medium",
		"estimatedDuration": 4,
		"teamSize":          2,
		"roles":             []string{"developer", "designer"},
	}
}

func TestHandleRecommend_AlgorithmicWithoutProvider(t *testing.T) {
	s := newTestStore(t)

	rec := serve(t, HandleRecommend(s, newTestEngine()), newJSONRequest(http.MethodPost, "/pricing/recommend", validProjectInput(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody[models.Recommendation](t, rec)
	if got.Source != models.SourceAlgorithmic {
		t.Errorf("Source = %q, want algorithmic", got.Source)
	}
	if got.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", got.Currency)
	}
	if got.TotalPrice <= 0 {
		t.Errorf("TotalPrice = %v, want positive", got.TotalPrice)
	}
	if len(got.Breakdown) != 2 || len(got.TeamSuggestions) != 2 {
		t.Errorf("expected one breakdown line and team member per role, got %d/%d", len(got.Breakdown), len(got.TeamSuggestions))
	}
}

func TestHandleRecommend_InvalidInput(t *testing.T) {
	s := newTestStore(t)
	input := validProjectInput()
	input["teamSize"] = 0

	rec := serve(t, HandleRecommend(s, newTestEngine()), newJSONRequest(http.MethodPost, "/pricing/recommend", input, nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestHandleRecommend_HTMXCard(t *testing.T) {
	s := newTestStore(t)
	req := newJSONRequest(http.MethodPost, "/pricing/recommend", validProjectInput(), nil)
	req.Header.Set("HX-Request", "true")

	rec := serve(t, HandleRecommend(s, newTestEngine()), req)
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Algorithmic estimate")
}

func TestHandleRecommend_InactiveAIConfigIgnored(t *testing.T) {
	s := newTestStore(t)
	// Saved key but disabled: no provider is built, so no network call.
	serve(t, HandleAISettingsSave(s), newJSONRequest(http.MethodPut, "/settings/ai",
		map[string]any{"provider": "groq", "apiKey": "gsk_test", "enabled": false}, nil))

	rec := serve(t, HandleRecommend(s, newTestEngine()), newJSONRequest(http.MethodPost, "/pricing/recommend", validProjectInput(), nil))
	if got := decodeBody[models.Recommendation](t, rec); got.Source != models.SourceAlgorithmic {
		t.Errorf("Source = %q, want algorithmic", got.Source)
	}
}

func TestHandleAttachRecommendation(t *testing.T) {
	s := newTestStore(t)
	doc := addTestDocument(t, s)

	body := map[string]any{"input": validProjectInput(), "appendBreakdown": true}
	rec := serve(t, HandleAttachRecommendation(s, newTestEngine()), newJSONRequest(http.MethodPost, "/documents/doc-1/recommendation", body, map[string]string{"id": doc.ID}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	view := decodeBody[DocumentView](t, rec)
	if view.AIRecommendation == nil {
		t.Fatal("expected recommendation to be attached")
	}
	if len(view.TeamMembers) != 2 {
		t.Errorf("expected 2 team members, got %d", len(view.TeamMembers))
	}
	if len(view.LineItems) != 4 {
		t.Errorf("expected breakdown appended to 2 existing items, got %d", len(view.LineItems))
	}
	if view.LineItems[2].ID == view.AIRecommendation.Breakdown[0].ID {
		t.Error("appended line items should get fresh ids")
	}
}

func TestHandleAttachRecommendation_MissingDocument(t *testing.T) {
	s := newTestStore(t)
	body := map[string]any{"input": validProjectInput()}

	rec := serve(t, HandleAttachRecommendation(s, newTestEngine()), newJSONRequest(http.MethodPost, "/documents/x/recommendation", body, map[string]string{"id": "x"}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleAISettings(t *testing.T) {
	s := newTestStore(t)

	rec := serve(t, HandleAISettingsSave(s), newJSONRequest(http.MethodPut, "/settings/ai",
		map[string]any{"provider": "groq", "apiKey": "gsk_abcdef123456", "enabled": true}, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	view := decodeBody[AISettingsView](t, rec)
	if view.APIKey != "********3456" {
		t.Errorf("APIKey = %q, want masked", view.APIKey)
	}
	if !view.HasAPIKey || !view.Enabled {
		t.Errorf("unexpected view %+v", view)
	}
	if s.Snapshot().AIConfig.APIKey != "gsk_abcdef123456" {
		t.Error("full key should be stored")
	}

	// Omitting the key keeps the stored one.
	serve(t, HandleAISettingsSave(s), newJSONRequest(http.MethodPut, "/settings/ai",
		map[string]any{"provider": "together", "enabled": true}, nil))
	cfg := s.Snapshot().AIConfig
	if cfg.Provider != "together" || cfg.APIKey != "gsk_abcdef123456" {
		t.Errorf("unexpected config after partial update: %+v", cfg)
	}

	rec = serve(t, HandleAISettingsGet(s), newJSONRequest(http.MethodGet, "/settings/ai", nil, nil))
	if got := decodeBody[AISettingsView](t, rec); len(got.Providers) != 4 {
		t.Errorf("expected 4 providers, got %v", got.Providers)
	}
}

func TestHandleAISettings_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"unknown provider", map[string]any{"provider": "openai", "apiKey": "k", "enabled": true}, http.StatusBadRequest},
		{"enabled without key", map[string]any{"provider": "groq", "enabled": true}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			rec := serve(t, HandleAISettingsSave(s), newJSONRequest(http.MethodPut, "/settings/ai", tt.body, nil))
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
			if s.Snapshot().AIConfig.Provider != "" {
				t.Error("config should not be saved")
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"abc":       "***",
		"abcdefghi": "********fghi",
	}
	for in, want := range tests {
		if got := maskKey(in); got != want {
			t.Errorf("maskKey(%q) = %q, want %q", in, got, want)
		}
	}
}
