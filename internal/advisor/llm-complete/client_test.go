// internal/advisor/llm-complete/client_test.go
package llmcomplete

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"career-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger implements the Logger interface for testing
type TestLogger struct {
	t *testing.T
}

func NewTestLogger(t *testing.T) *TestLogger { return &TestLogger{t: t} }

func (l *TestLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO: %s %v", msg, fields)
}
func (l *TestLogger) Warn(msg string, fields map[string]interface{}) {
	l.t.Logf("WARN: %s %v", msg, fields)
}
func (l *TestLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR: %s %v", msg, fields)
}
func (l *TestLogger) With(fields map[string]interface{}) Logger { return l }

func testConfig(baseURL string) *Config {
	cfg := LoadConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = "test-key"
	cfg.Timeout = 2 * time.Second
	cfg.MaxRetries = 1
	return cfg
}

func completionBody(text string, tokens int) string {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": text}},
		},
		"usage": map[string]interface{}{"total_tokens": tokens},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestClient_Configured(t *testing.T) {
	cfg := LoadConfig()
	c := NewClient(cfg, NewTestLogger(t))
	assert.False(t, c.Configured())

	cfg.BaseURL = "http://localhost"
	assert.False(t, c.Configured())

	cfg.APIKey = "key"
	assert.True(t, c.Configured())
}

func TestClient_Complete_Unconfigured(t *testing.T) {
	c := NewClient(LoadConfig(), NewTestLogger(t))
	out, err := c.Complete(context.Background(), &Input{UserMessage: "hi"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Complete_Success(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{"response_type":"answer"}`, 321)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), NewTestLogger(t))
	out, err := c.Complete(context.Background(), &Input{
		SystemPrompt: "system",
		History: []models.ConversationTurn{
			{Role: "user", Content: json.RawMessage(`"earlier question"`)},
			{Role: "assistant", Content: json.RawMessage(`"earlier answer"`)},
		},
		UserMessage: "current question",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"response_type":"answer"}`, out.Text)
	assert.Equal(t, 321, out.TokensUsed)

	// Request contract: JSON mode, bounded output, history merged in order.
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.Equal(t, 1024, captured.MaxTokens)
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "earlier question", captured.Messages[1].Content)
	assert.Equal(t, "earlier answer", captured.Messages[2].Content)
	assert.Equal(t, "current question", captured.Messages[3].Content)
}

func TestClient_Complete_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(completionBody("ok", 10)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), NewTestLogger(t))
	out, err := c.Complete(context.Background(), &Input{UserMessage: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Complete_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), NewTestLogger(t))
	out, err := c.Complete(context.Background(), &Input{UserMessage: "hi"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrCompletionFailed)
}

func TestClient_Complete_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(completionBody("late", 1)))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(testConfig(srv.URL), NewTestLogger(t))
	out, err := c.Complete(ctx, &Input{UserMessage: "hi"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrCompletionTimeout)
}

func TestClient_Complete_SkipsNonChatRoles(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(completionBody("ok", 1)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), NewTestLogger(t))
	_, err := c.Complete(context.Background(), &Input{
		SystemPrompt: "system",
		History: []models.ConversationTurn{
			{Role: "tool", Content: json.RawMessage(`"ignored"`)},
		},
		UserMessage: "hi",
	})

	require.NoError(t, err)
	require.Len(t, captured.Messages, 2)
}
