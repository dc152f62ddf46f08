// Package config loads SmartQuote settings from defaults, an optional YAML
// file, a .env file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"gopkg.in/yaml.v3"

	"smartquote/services"
)

const (
	BackendPocketBase = "pocketbase"
	BackendPostgres   = "postgres"
	BackendMemory     = "memory"
)

// Config defines application configuration.
type Config struct {
	Env     string        `yaml:"env"`
	Market  string        `yaml:"market"`
	AI      AIConfig      `yaml:"ai"`
	Storage StorageConfig `yaml:"storage"`
	PDF     PDFConfig     `yaml:"pdf"`
}

// AIConfig selects a pricing provider for the whole installation. When
// Provider and APIKey are set they take precedence over the user's settings.
type AIConfig struct {
	Provider string        `yaml:"provider"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"`
	DatabaseURL string `yaml:"database_url"`
}

type PDFConfig struct {
	ShowLogo            bool   `yaml:"show_logo"`
	ShowBankDetails     bool   `yaml:"show_bank_details"`
	ShowInclusiveColumn bool   `yaml:"show_inclusive_column"`
	ShowAmountInWords   bool   `yaml:"show_amount_in_words"`
	Accent              string `yaml:"accent"`
}

// Production reports whether SMARTQUOTE_ENV (or env in the file) is
// "production".
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// Layout converts the PDF settings into an export layout. An unparsable
// accent keeps the default colour.
func (c PDFConfig) Layout() services.PDFLayout {
	layout := services.DefaultPDFLayout()
	layout.ShowLogo = c.ShowLogo
	layout.ShowBankDetails = c.ShowBankDetails
	layout.ShowInclusiveColumn = c.ShowInclusiveColumn
	layout.ShowAmountInWords = c.ShowAmountInWords
	if accent, err := parseHexColor(c.Accent); err == nil {
		layout.Accent = accent
	}
	return layout
}

func defaults() Config {
	return Config{
		Env:    "development",
		Market: "za",
		AI: AIConfig{
			Timeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Backend: BackendPocketBase,
		},
		PDF: PDFConfig{
			ShowLogo:            true,
			ShowBankDetails:     true,
			ShowInclusiveColumn: true,
			ShowAmountInWords:   true,
			Accent:              "#212529",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if os.Getenv("SMARTQUOTE_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	if path := os.Getenv("SMARTQUOTE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	switch cfg.Storage.Backend {
	case BackendPocketBase, BackendMemory:
	case BackendPostgres:
		if cfg.Storage.DatabaseURL == "" {
			return Config{}, errors.New("storage backend postgres needs DATABASE_URL")
		}
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = b
		return nil
	}

	setString("SMARTQUOTE_ENV", &cfg.Env)
	setString("SMARTQUOTE_MARKET", &cfg.Market)
	setString("SMARTQUOTE_AI_PROVIDER", &cfg.AI.Provider)
	setString("GROQ_API_KEY", &cfg.AI.APIKey)
	setString("SMARTQUOTE_AI_API_KEY", &cfg.AI.APIKey)
	setString("SMARTQUOTE_AI_MODEL", &cfg.AI.Model)
	setString("SMARTQUOTE_STORAGE_BACKEND", &cfg.Storage.Backend)
	setString("DATABASE_URL", &cfg.Storage.DatabaseURL)
	setString("SMARTQUOTE_PDF_ACCENT", &cfg.PDF.Accent)

	if cfg.AI.Provider == "" && os.Getenv("GROQ_API_KEY") != "" {
		cfg.AI.Provider = "groq"
	}

	if v := os.Getenv("SMARTQUOTE_AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SMARTQUOTE_AI_TIMEOUT: %w", err)
		}
		cfg.AI.Timeout = d
	}

	for key, dst := range map[string]*bool{
		"SMARTQUOTE_PDF_SHOW_LOGO":             &cfg.PDF.ShowLogo,
		"SMARTQUOTE_PDF_SHOW_BANK_DETAILS":     &cfg.PDF.ShowBankDetails,
		"SMARTQUOTE_PDF_SHOW_INCLUSIVE_COLUMN": &cfg.PDF.ShowInclusiveColumn,
		"SMARTQUOTE_PDF_SHOW_AMOUNT_IN_WORDS":  &cfg.PDF.ShowAmountInWords,
	} {
		if err := setBool(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// parseHexColor accepts "#rrggbb" or "rrggbb".
func parseHexColor(s string) (props.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return props.Color{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return props.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}, nil
}
