// internal/common/auth/verifier.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrInvalidSession means the provider rejected the token.
var ErrInvalidSession = errors.New("INVALID_SESSION")

// Session is the opaque verified identity the pipeline works with. The auth
// provider owns everything else about the user session.
type Session struct {
	UserID        string `json:"userId"`
	Authenticated bool   `json:"authenticated"`
}

// Verifier checks a bearer token against the external auth provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// HTTPVerifier calls the provider's session introspection endpoint.
type HTTPVerifier struct {
	verifyURL  string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier against the given introspection URL.
func NewHTTPVerifier(verifyURL string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		verifyURL:  strings.TrimSuffix(verifyURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Verify exchanges the bearer token for the session identity. Any non-200
// answer from the provider is treated as an invalid session.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.verifyURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute verify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrInvalidSession
	}

	var payload struct {
		UserID string `json:"user_id"`
		Active bool   `json:"active"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}

	if payload.UserID == "" || !payload.Active {
		return nil, ErrInvalidSession
	}

	return &Session{UserID: payload.UserID, Authenticated: true}, nil
}
