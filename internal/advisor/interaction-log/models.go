// internal/advisor/interaction-log/models.go
package interactionlog

import "career-advisor/internal/models"

type Input struct {
	Record *models.InteractionLogRecord
}

type Output struct {
	Logged bool   `json:"logged"`
	ID     string `json:"id,omitempty"`
}
