// Package llm provides interchangeable text-completion providers that share
// one request shape: a system+user message list in, assistant text out.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// Request is the provider-neutral completion request.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Provider completes a request and returns the assistant text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Provider names.
const (
	Groq        = "groq"
	Together    = "together"
	OpenRouter  = "openrouter"
	HuggingFace = "huggingface"
)

type options struct {
	baseURL    string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

// Option customises a provider built by New.
type Option func(*options)

// WithBaseURL overrides the provider endpoint (used by tests and proxies).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithModel overrides the provider's default model.
func WithModel(m string) Option {
	return func(o *options) { o.model = m }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient replaces the HTTP client. Its Timeout takes precedence over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// New builds the provider registered under name.
func New(name, apiKey string, opts ...Option) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	switch name {
	case Groq:
		return newChatClient(name, apiKey, "https://api.groq.com/openai/v1/chat/completions", "llama-3.3-70b-versatile", nil, o), nil
	case Together:
		return newChatClient(name, apiKey, "https://api.together.xyz/v1/chat/completions", "mistralai/Mixtral-8x7B-Instruct-v0.1", nil, o), nil
	case OpenRouter:
		headers := map[string]string{
			"HTTP-Referer": "https://smartquote.app",
			"X-Title":      "SmartQuote",
		}
		return newChatClient(name, apiKey, "https://openrouter.ai/api/v1/chat/completions", "mistralai/mixtral-8x7b-instruct", headers, o), nil
	case HuggingFace:
		return newHuggingFaceClient(apiKey, o), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// Names lists the supported provider names.
func Names() []string {
	return []string{Groq, HuggingFace, Together, OpenRouter}
}
