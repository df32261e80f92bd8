// internal/advisor/rate-limit/handler.go
package ratelimit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const Stage = "rate-limit"

var ErrRateCheckFailed = errors.New("RATE_CHECK_FAILED")

// Logger interface definition
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Handler counts a user's logged interactions inside the trailing window and
// admits or rejects the request. Counting and logging happen against the
// same table without a transaction, so concurrent requests from one user can
// briefly overshoot the quota; that tradeoff is accepted.
type Handler struct {
	config *Config
	db     *sql.DB
	logger Logger
}

func NewHandler(config *Config, db *sql.DB, log Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		logger: log.With(map[string]interface{}{"stage": Stage}),
	}
}

// Execute runs the quota check. A store read error is a hard failure: the
// limiter must not silently admit requests it cannot count.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	windowStart := time.Now().UTC().Add(-h.config.Window)

	var count int
	query := `SELECT COUNT(*) FROM interaction_logs WHERE user_id = $1 AND created_at >= $2`
	if err := h.db.QueryRowContext(ctx, query, input.UserID, windowStart).Scan(&count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateCheckFailed, err)
	}

	remaining := h.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	out := &Output{
		Allowed:   count < h.config.Limit,
		Remaining: remaining,
	}

	if !out.Allowed {
		h.logger.Info("request rejected by quota", map[string]interface{}{
			"userId": input.UserID,
			"count":  count,
			"limit":  h.config.Limit,
		})
	}

	return out, nil
}
