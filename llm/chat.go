package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response body is kept in a StatusError.
const maxErrorBody = 512

// ChatClient talks to OpenAI-compatible chat completion endpoints
// (Groq, Together, OpenRouter).
type ChatClient struct {
	name    string
	apiKey  string
	url     string
	model   string
	headers map[string]string
	client  *http.Client
}

func newChatClient(name, apiKey, url, model string, headers map[string]string, o options) *ChatClient {
	if o.baseURL != "" {
		url = o.baseURL
	}
	if o.model != "" {
		model = o.model
	}
	return &ChatClient{
		name:    name,
		apiKey:  apiKey,
		url:     url,
		model:   model,
		headers: headers,
		client:  o.httpClient,
	}
}

func (c *ChatClient) Name() string { return c.name }

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete posts the chat request and returns choices[0].message.content.
func (c *ChatClient) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", c.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", c.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	raw, err := doRequest(c.client, c.name, httpReq)
	if err != nil {
		return "", err
	}

	var result chatResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode %s response: %w", c.name, err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return result.Choices[0].Message.Content, nil
}

// doRequest executes req and returns the body of a 2xx response.
func doRequest(client *http.Client, provider string, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", provider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return nil, &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
