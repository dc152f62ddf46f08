package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const huggingFaceURL = "https://api-inference.huggingface.co/models/mistralai/Mixtral-8x7B-Instruct-v0.1"

// HuggingFaceClient calls the text-generation inference API. The message list
// is flattened into a single prompt.
type HuggingFaceClient struct {
	apiKey string
	url    string
	client *http.Client
}

func newHuggingFaceClient(apiKey string, o options) *HuggingFaceClient {
	url := huggingFaceURL
	if o.baseURL != "" {
		url = o.baseURL
	} else if o.model != "" {
		url = "https://api-inference.huggingface.co/models/" + o.model
	}
	return &HuggingFaceClient{apiKey: apiKey, url: url, client: o.httpClient}
}

func (c *HuggingFaceClient) Name() string { return HuggingFace }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

// Complete returns [0].generated_text.
func (c *HuggingFaceClient) Complete(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: flattenMessages(req.Messages),
		Parameters: hfParameters{
			MaxNewTokens: req.MaxTokens,
			Temperature:  req.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal huggingface request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build huggingface request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	raw, err := doRequest(c.client, HuggingFace, httpReq)
	if err != nil {
		return "", err
	}

	var result []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode huggingface response: %w", err)
	}
	if len(result) == 0 || result[0].GeneratedText == "" {
		return "", ErrEmptyResponse
	}
	return result[0].GeneratedText, nil
}

func flattenMessages(msgs []Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n\n")
}
