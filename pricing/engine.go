// Package pricing produces project price recommendations, either from an
// external LLM analysis or from a local rate-table estimate.
package pricing

import (
	"context"
	"log/slog"

	"smartquote/llm"
	"smartquote/models"
)

const (
	temperature = 0.7
	maxTokens   = 2000
)

// Engine selects between the provider analysis and the local estimate once
// per call. It is safe for concurrent use.
type Engine struct {
	provider     llm.Provider
	model        string
	market       Market
	logger       *slog.Logger
	providerOpts []llm.Option
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithProvider configures the provider analysis. A nil provider means local
// estimates only.
func WithProvider(p llm.Provider) EngineOption {
	return func(e *Engine) { e.provider = p }
}

// WithModel overrides the provider's default model.
func WithModel(model string) EngineOption {
	return func(e *Engine) { e.model = model }
}

// WithLogger sets the logger used to report provider failures.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithProviderOptions are applied when a provider is built from an AIConfig.
func WithProviderOptions(opts ...llm.Option) EngineOption {
	return func(e *Engine) { e.providerOpts = append(e.providerOpts, opts...) }
}

// NewEngine returns an engine for market.
func NewEngine(market Market, opts ...EngineOption) *Engine {
	e := &Engine{market: market, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Market returns the engine's market.
func (e *Engine) Market() Market { return e.market }

// HasProvider reports whether Recommend will try the provider first.
func (e *Engine) HasProvider() bool { return e.provider != nil }

// WithAIConfig returns an engine that uses the provider named by cfg when
// the engine has none of its own. An environment-configured provider wins
// over the user's settings.
func (e *Engine) WithAIConfig(cfg models.AIConfig) *Engine {
	if e.provider != nil || !cfg.Active() {
		return e
	}
	p, err := llm.New(cfg.Provider, cfg.APIKey, e.providerOpts...)
	if err != nil {
		e.logger.Warn("pricing: ignoring AI settings", "provider", cfg.Provider, "error", err)
		return e
	}
	clone := *e
	clone.provider = p
	return &clone
}

// Recommend never fails: any provider, transport or parse error is logged
// and answered with the local estimate.
func (e *Engine) Recommend(ctx context.Context, input models.ProjectInput) models.Recommendation {
	if e.provider != nil {
		rec, err := e.analyze(ctx, input)
		if err == nil {
			return rec
		}
		e.logger.Warn("pricing: provider analysis failed, using local estimate",
			"provider", e.provider.Name(), "error", err)
	}
	return e.Estimate(input)
}

// Estimate runs the local rate-table estimate only.
func (e *Engine) Estimate(input models.ProjectInput) models.Recommendation {
	return Normalize(FallbackAnalysis(input, e.market), input, e.market, models.SourceAlgorithmic)
}

func (e *Engine) analyze(ctx context.Context, input models.ProjectInput) (models.Recommendation, error) {
	text, err := e.provider.Complete(ctx, llm.Request{
		Model: e.model,
		Messages: []llm.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: BuildPrompt(input, e.market)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return models.Recommendation{}, err
	}

	a, err := ParseAnalysis(text)
	if err != nil {
		return models.Recommendation{}, err
	}

	rec := Normalize(*a, input, e.market, models.SourceAI)
	rec.Provider = e.provider.Name()
	return AppendProjectManagement(rec, input.ProjectSize), nil
}
