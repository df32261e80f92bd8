// internal/advisor/interaction-log/handler.go
package interactionlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const Stage = "interaction-log"

// Logger interface definition
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Handler appends one audit row per exchange. The table doubles as the rate
// limiter's counter, so a missed write slightly under-counts the quota; that
// is preferred over failing a response the user already paid tokens for.
type Handler struct {
	db     *sql.DB
	logger Logger
}

func NewHandler(db *sql.DB, log Logger) *Handler {
	return &Handler{
		db:     db,
		logger: log.With(map[string]interface{}{"stage": Stage}),
	}
}

// Execute writes the record. It never returns an error: write failures are
// logged locally and reported through Output.Logged only.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	record := input.Record
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.ValidationIssues == nil {
		record.ValidationIssues = []string{}
	}

	contextJSON, err := json.Marshal(record.DetectedContext)
	if err != nil {
		h.logger.Error("failed to encode detected context", map[string]interface{}{
			"userId": record.UserID,
			"error":  err.Error(),
		})
		contextJSON = []byte("{}")
	}

	query := `
		INSERT INTO interaction_logs
			(id, user_id, user_message, raw_response, detected_context,
			 retrieved_count, validation_issues, tokens_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = h.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.UserMessage,
		record.RawResponse,
		contextJSON,
		record.RetrievedCount,
		pq.Array(record.ValidationIssues),
		record.TokensUsed,
		record.CreatedAt,
	)
	if err != nil {
		h.logger.Error("failed to write interaction log", map[string]interface{}{
			"userId": record.UserID,
			"error":  err.Error(),
		})
		return &Output{Logged: false}
	}

	h.logger.Info("interaction logged", map[string]interface{}{
		"id":         record.ID,
		"userId":     record.UserID,
		"tokensUsed": record.TokensUsed,
		"issueCount": len(record.ValidationIssues),
	})

	return &Output{Logged: true, ID: record.ID}
}
