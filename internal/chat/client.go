package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultHost is the completion service queried when no host is configured.
const DefaultHost = "http://127.0.0.1:8080"

// Client talks to an OpenAI-compatible chat completion service.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the service at host. An empty host falls
// back to [DefaultHost], a missing scheme defaults to http, and trailing
// slashes are trimmed. apiKey may be empty; local servers rarely need one.
// A zero timeout means no client-side timeout, which suits streamed
// generation on slow local models. logger may be nil.
func NewClient(host, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: NormalizeHost(host),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// NormalizeHost canonicalizes a host flag or config value into a base URL.
// Trailing slashes and endpoint suffixes are trimmed so values like
// http://127.0.0.1:8080/v1 work as-is.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return DefaultHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	host = strings.TrimRight(host, "/")
	host = strings.TrimSuffix(host, "/v1/chat/completions")
	host = strings.TrimSuffix(host, "/v1")
	return host
}

type chatRequest struct {
	Stream   bool          `json:"stream"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateMessage asks the service for an improved commit message based on
// commitText and returns the cleaned-up result. The response is streamed;
// onToken, if non-nil, observes each content delta as it arrives. A stream
// that closes early yields whatever was generated so far.
func (c *Client) GenerateMessage(ctx context.Context, commitText string, onToken func(string)) (string, error) {
	body := chatRequest{
		Stream: true,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt()},
			{Role: "user", Content: UserPrompt(commitText)},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	c.logger.Debug("chat request", zap.String("url", url), zap.Int("bytes", len(payload)))

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	raw := DecodeStream(httpResp.Body, onToken)
	c.logger.Debug("chat response", zap.String("content", raw))
	return CleanResponse(raw), nil
}

// CleanResponse trims the raw model output and drops a surrounding markdown
// code fence if the model wrapped its answer in one.
func CleanResponse(content string) string {
	content = strings.TrimSpace(content)
	lines := strings.Split(content, "\n")
	if len(lines) >= 2 {
		if strings.HasPrefix(lines[0], "```") {
			lines = lines[1:]
		}
		if strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		content = strings.Join(lines, "\n")
	}
	return strings.TrimSpace(content)
}

type modelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Models returns the model ids the service exposes via /v1/models.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	url := c.baseURL + "/v1/models"

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var list modelList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	ids := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
