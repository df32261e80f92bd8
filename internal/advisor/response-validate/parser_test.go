// internal/advisor/response-validate/parser_test.go
package responsevalidate

import (
	"testing"

	"career-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidJSON(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Tech is growing fast in Accra."}],"next_questions":["What skills should I learn?"]}`

	resp := Parse(raw)

	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "answer", resp.ResponseType)
	assert.Equal(t, models.SectionParagraph, resp.Sections[0].Type)
	assert.Equal(t, "Tech is growing fast in Accra.", resp.Sections[0].Text)
	assert.Equal(t, []string{"What skills should I learn?"}, resp.NextQuestions)
}

func TestParse_StripsCodeFence(t *testing.T) {
	raw := "```json\n{\"response_type\":\"answer\",\"sections\":[{\"type\":\"paragraph\",\"text\":\"hello\"}]}\n```"

	resp := Parse(raw)

	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "hello", resp.Sections[0].Text)
}

func TestParse_InvalidJSONFallsBack(t *testing.T) {
	raw := "Here is some career advice: focus on **cloud skills**."

	resp := Parse(raw)

	require.Len(t, resp.Sections, 1)
	assert.Equal(t, models.SectionParagraph, resp.Sections[0].Type)
	// Raw text survives verbatim so nothing the model said is lost.
	assert.Equal(t, raw, resp.Sections[0].Text)
	assert.Equal(t, "answer", resp.ResponseType)
	assert.NotNil(t, resp.NextQuestions)
}

func TestParse_EmptySectionsFallsBack(t *testing.T) {
	raw := `{"response_type":"answer","sections":[]}`

	resp := Parse(raw)

	require.Len(t, resp.Sections, 1)
	assert.Equal(t, raw, resp.Sections[0].Text)
}

func TestParse_DefaultsMissingFields(t *testing.T) {
	raw := `{"sections":[{"type":"paragraph","text":"hi"}]}`

	resp := Parse(raw)

	assert.Equal(t, "answer", resp.ResponseType)
	assert.Equal(t, []string{}, resp.NextQuestions)
}
