// internal/advisor/llm-complete/client.go
package llmcomplete

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const Stage = "llm-complete"

var (
	ErrNotConfigured     = errors.New("LLM_NOT_CONFIGURED")
	ErrCompletionFailed  = errors.New("LLM_CALL_FAILED")
	ErrCompletionTimeout = errors.New("LLM_TIMEOUT")
)

// Logger interface definition
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Client invokes the external completion service in JSON mode. It is an
// explicitly constructed, injected dependency: the orchestrator checks
// Configured() before calling and fails the request fast when the service
// was never set up. This is the only pipeline stage allowed to retry.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     Logger
}

func NewClient(config *Config, log Logger) *Client {
	return &Client{
		config: config,
		// No client timeout; the per-request context bounds the call.
		httpClient: &http.Client{},
		logger:     log.With(map[string]interface{}{"stage": Stage}),
	}
}

// Configured reports whether the completion service can be called at all.
func (c *Client) Configured() bool {
	return c.config.BaseURL != "" && c.config.APIKey != ""
}

// Complete sends the assembled request and returns the raw model text. The
// contract (JSON mode, bounded output) is what makes the parser's job
// tractable; temperature stays moderate to favour consistency.
func (c *Client) Complete(ctx context.Context, input *Input) (*Output, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqBody := chatRequest{
		Model:       c.config.Model,
		Messages:    c.buildMessages(input),
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrCompletionTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			strings.TrimSuffix(c.config.BaseURL, "/")+"/v1/chat/completions",
			bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

		resp, lastErr = c.httpClient.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrCompletionTimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrCompletionTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, lastErr)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: no successful response after retries", ErrCompletionFailed)
	}
	defer resp.Body.Close()

	var apiResponse chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrCompletionFailed, err)
	}

	if len(apiResponse.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrCompletionFailed)
	}

	out := &Output{
		Text:       apiResponse.Choices[0].Message.Content,
		TokensUsed: apiResponse.Usage.TotalTokens,
	}

	c.logger.Info("completion received", map[string]interface{}{
		"tokensUsed": out.TokensUsed,
		"textLength": len(out.Text),
	})

	return out, nil
}

func (c *Client) buildMessages(input *Input) []chatMessage {
	messages := []chatMessage{
		{Role: "system", Content: input.SystemPrompt},
	}
	for _, turn := range input.History {
		role := turn.Role
		if role != "user" && role != "assistant" {
			continue
		}
		messages = append(messages, chatMessage{Role: role, Content: turn.Text()})
	}
	messages = append(messages, chatMessage{Role: "user", Content: input.UserMessage})
	return messages
}
