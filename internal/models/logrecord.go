// internal/models/logrecord.go
package models

import "time"

// InteractionLogRecord is the append-only audit row for one exchange. The
// rate limiter counts these rows to enforce the hourly quota.
type InteractionLogRecord struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	UserMessage      string          `json:"userMessage"`
	RawResponse      string          `json:"rawResponse"`
	DetectedContext  DetectedContext `json:"detectedContext"`
	RetrievedCount   int             `json:"retrievedCount"`
	ValidationIssues []string        `json:"validationIssues"`
	TokensUsed       int             `json:"tokensUsed"`
	CreatedAt        time.Time       `json:"createdAt"`
}
