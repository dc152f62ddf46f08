package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	_, err := New(Groq, "")
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New("anthropic-mail", "key")
	require.ErrorIs(t, err, ErrUnknownProvider)

	for _, name := range Names() {
		p, err := New(name, "key")
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}
}

func TestChatClient_Complete(t *testing.T) {
	var got chatRequest
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	p, err := New(OpenRouter, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), Request{
		Messages:    []Message{{Role: "system", Content: "sys"}, {Role: "user", Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "mistralai/mixtral-8x7b-instruct", got.Model)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "Bearer secret", headers.Get("Authorization"))
	assert.Equal(t, "SmartQuote", headers.Get("X-Title"))
}

func TestChatClient_ModelOverride(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"x"}}]}`))
	}))
	defer srv.Close()

	p, err := New(Groq, "k", WithBaseURL(srv.URL), WithModel("llama-small"))
	require.NoError(t, err)
	_, err = p.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "llama-small", got.Model)
}

func TestChatClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p, err := New(Together, "k", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), Request{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, Together, se.Provider)
}

func TestChatClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p, err := New(Groq, "k", WithBaseURL(srv.URL))
	require.NoError(t, err)
	_, err = p.Complete(context.Background(), Request{})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestChatClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p, err := New(Groq, "k", WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	_, err = p.Complete(context.Background(), Request{})
	require.Error(t, err)
}

func TestHuggingFaceClient_Complete(t *testing.T) {
	var got hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"generated_text":"answer"}]`))
	}))
	defer srv.Close()

	p, err := New(HuggingFace, "k", WithBaseURL(srv.URL))
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), Request{
		Messages:    []Message{{Role: "system", Content: "a"}, {Role: "user", Content: "b"}},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "answer", out)
	assert.Equal(t, "a\n\nb", got.Inputs)
	assert.Equal(t, 2000, got.Parameters.MaxNewTokens)
}
