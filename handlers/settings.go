package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/llm"
	"smartquote/models"
	"smartquote/store"
)

// AISettingsView is the AI config as shown to the browser. The key itself
// never leaves the server.
type AISettingsView struct {
	Provider  string   `json:"provider"`
	Enabled   bool     `json:"enabled"`
	HasAPIKey bool     `json:"hasApiKey"`
	APIKey    string   `json:"apiKey"`
	Providers []string `json:"providers"`
}

func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}

func aiSettingsView(cfg models.AIConfig) AISettingsView {
	return AISettingsView{
		Provider:  cfg.Provider,
		Enabled:   cfg.Enabled,
		HasAPIKey: cfg.APIKey != "",
		APIKey:    maskKey(cfg.APIKey),
		Providers: llm.Names(),
	}
}

func HandleAISettingsGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, aiSettingsView(s.Snapshot().AIConfig))
	}
}

type aiSettingsRequest struct {
	Provider string  `json:"provider"`
	APIKey   *string `json:"apiKey"`
	Enabled  bool    `json:"enabled"`
}

// HandleAISettingsSave stores the provider settings. A missing apiKey keeps
// the stored key; an empty string clears it.
func HandleAISettingsSave(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req aiSettingsRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid AI settings")
		}

		cfg := s.Snapshot().AIConfig
		cfg.Provider = strings.TrimSpace(req.Provider)
		cfg.Enabled = req.Enabled
		if req.APIKey != nil {
			cfg.APIKey = strings.TrimSpace(*req.APIKey)
		}

		if cfg.Provider != "" && !slices.Contains(llm.Names(), cfg.Provider) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown AI provider "+cfg.Provider)
		}
		if cfg.Enabled && (cfg.Provider == "" || cfg.APIKey == "") {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Choose a provider and enter an API key to enable AI pricing")
		}

		st, err := s.Dispatch(e.Request.Context(), store.SetAIConfig{Config: cfg})
		if err != nil {
			return respondError(e, "settings: HandleAISettingsSave", err)
		}

		SetToast(e, "success", "AI settings saved")
		return e.JSON(http.StatusOK, aiSettingsView(st.AIConfig))
	}
}
