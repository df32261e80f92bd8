// internal/advisor/response-validate/parser.go
package responsevalidate

import (
	"encoding/json"
	"strings"

	"career-advisor/internal/models"
)

const Stage = "response-validate"

// Parse decodes raw model text into the structured reply shape. Models in
// JSON mode still occasionally wrap output in code fences, so those are
// stripped before decoding. Any decode failure falls back to a single
// paragraph carrying the raw text verbatim: the client must always receive
// something renderable.
func Parse(raw string) *models.StructuredResponse {
	candidate := stripCodeFence(raw)

	var resp models.StructuredResponse
	if err := json.Unmarshal([]byte(candidate), &resp); err != nil {
		return models.FallbackResponse(raw)
	}
	if len(resp.Sections) == 0 {
		return models.FallbackResponse(raw)
	}

	if resp.ResponseType == "" {
		resp.ResponseType = "answer"
	}
	if resp.NextQuestions == nil {
		resp.NextQuestions = []string{}
	}
	return &resp
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
