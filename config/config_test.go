package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SMARTQUOTE_CONFIG_PATH", "SMARTQUOTE_ENV", "SMARTQUOTE_MARKET",
	"SMARTQUOTE_AI_PROVIDER", "SMARTQUOTE_AI_API_KEY", "GROQ_API_KEY",
	"SMARTQUOTE_AI_MODEL", "SMARTQUOTE_AI_TIMEOUT",
	"SMARTQUOTE_STORAGE_BACKEND", "DATABASE_URL",
	"SMARTQUOTE_PDF_ACCENT", "SMARTQUOTE_PDF_SHOW_LOGO", "SMARTQUOTE_PDF_SHOW_BANK_DETAILS",
	"SMARTQUOTE_PDF_SHOW_INCLUSIVE_COLUMN", "SMARTQUOTE_PDF_SHOW_AMOUNT_IN_WORDS",
}

// cleanEnv blanks every variable Load reads and moves to an empty directory
// so no stray .env file is picked up.
func cleanEnv(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "za", cfg.Market)
	assert.Equal(t, BackendPocketBase, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.Production())
	assert.True(t, cfg.PDF.ShowBankDetails)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := cleanEnv(t)
	path := filepath.Join(dir, "smartquote.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
market: us
ai:
  provider: together
  api_key: file-key
  timeout: 5s
pdf:
  show_bank_details: false
  accent: "#0d6efd"
`), 0o600))

	t.Setenv("SMARTQUOTE_CONFIG_PATH", path)
	t.Setenv("SMARTQUOTE_AI_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "us", cfg.Market)
	assert.Equal(t, "together", cfg.AI.Provider)
	assert.Equal(t, "env-key", cfg.AI.APIKey)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)

	layout := cfg.PDF.Layout()
	assert.False(t, layout.ShowBankDetails)
	assert.True(t, layout.ShowLogo)
	assert.Equal(t, props.Color{Red: 13, Green: 110, Blue: 253}, layout.Accent)
}

func TestLoad_GroqKeyImpliesProvider(t *testing.T) {
	cleanEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "groq", cfg.AI.Provider)
	assert.Equal(t, "gsk_test", cfg.AI.APIKey)
}

func TestLoad_DotEnvSkippedInProduction(t *testing.T) {
	dir := cleanEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SMARTQUOTE_MARKET=us\n"), 0o600))

	t.Setenv("SMARTQUOTE_ENV", "production")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "za", cfg.Market)
	assert.True(t, cfg.Production())
}

func TestLoad_DotEnvRead(t *testing.T) {
	dir := cleanEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SMARTQUOTE_MARKET=us\n"), 0o600))
	// godotenv does not override variables that are already set, even empty ones
	require.NoError(t, os.Unsetenv("SMARTQUOTE_MARKET"))
	t.Cleanup(func() { os.Unsetenv("SMARTQUOTE_MARKET") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "us", cfg.Market)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad timeout", map[string]string{"SMARTQUOTE_AI_TIMEOUT": "soon"}},
		{"bad bool", map[string]string{"SMARTQUOTE_PDF_SHOW_LOGO": "maybe"}},
		{"unknown backend", map[string]string{"SMARTQUOTE_STORAGE_BACKEND": "redis"}},
		{"postgres without url", map[string]string{"SMARTQUOTE_STORAGE_BACKEND": "postgres"}},
		{"missing file", map[string]string{"SMARTQUOTE_CONFIG_PATH": "/nonexistent/smartquote.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, props.Color{Red: 255, Green: 128, Blue: 0}, c)

	_, err = parseHexColor("#fff")
	assert.Error(t, err)
	_, err = parseHexColor("zzzzzz")
	assert.Error(t, err)
}
