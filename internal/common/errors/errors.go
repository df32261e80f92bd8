// Package errors provides the standardized error taxonomy for the advice
// pipeline and its mapping onto HTTP responses.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrCodeRateCheckFailed  ErrorCode = "RATE_CHECK_FAILED"
	ErrCodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeDataQueryFailed  ErrorCode = "DATA_QUERY_FAILED"
	ErrCodeLLMNotConfigured ErrorCode = "LLM_NOT_CONFIGURED"
	ErrCodeLLMTimeout       ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMCallFailed    ErrorCode = "LLM_CALL_FAILED"
	ErrCodeLogWriteFailed   ErrorCode = "LOG_WRITE_FAILED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Message is safe
// to show to the client; Details is internal only.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the status the orchestrator responds with.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewUnauthorizedError creates the 401 error. The message is fixed so the
// client contract stays stable.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Unauthorized",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError creates a 400 error with a diagnostic message
// describing what was received.
func NewInvalidInputError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError creates the 429 quota error.
func NewRateLimitedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Rate limit exceeded. Please try again later.",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateCheckFailedError is the one store failure that is deliberately not
// degraded: admitting requests without a count would defeat the limiter.
func NewRateCheckFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateCheckFailed,
		Message:   "Unable to verify usage quota",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMNotConfiguredError signals the completion service is missing. The
// message stays generic; internal detail never reaches the client.
func NewLLMNotConfiguredError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMNotConfigured,
		Message:   "Advice service is not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMCallFailedError wraps a completion transport failure.
func NewLLMCallFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMCallFailed,
		Message:   "Failed to generate a response",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError is the catch-all 500.
func NewInternalError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Something went wrong",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
