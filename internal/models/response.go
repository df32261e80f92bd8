// internal/models/response.go
package models

// SectionType is the fixed vocabulary the model is instructed to use.
type SectionType string

const (
	SectionHeading   SectionType = "heading"
	SectionParagraph SectionType = "paragraph"
	SectionEmphasis  SectionType = "emphasis"
	SectionList      SectionType = "list"
	SectionSources   SectionType = "sources"
)

// ListStyle hints how the dashboard renders a list section.
type ListStyle string

const (
	ListPlain ListStyle = "plain"
	ListCards ListStyle = "cards"
	ListSteps ListStyle = "steps"
)

// SectionItem is one entry of a list or sources section.
type SectionItem struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Organization string `json:"organization,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Section is one block of the structured reply.
type Section struct {
	Type   SectionType   `json:"type"`
	Text   string        `json:"text,omitempty"`
	Intent string        `json:"intent,omitempty"`
	Style  ListStyle     `json:"style,omitempty"`
	Items  []SectionItem `json:"items,omitempty"`
}

// StructuredResponse is the contract the completion service must honor and
// the shape the dashboard renders. The parser guarantees the client always
// receives one, even when the model output fails to decode.
type StructuredResponse struct {
	ResponseType  string    `json:"response_type"`
	Sections      []Section `json:"sections"`
	NextQuestions []string  `json:"next_questions"`
}

// FallbackResponse wraps raw model text into the minimal renderable shape.
func FallbackResponse(raw string) *StructuredResponse {
	return &StructuredResponse{
		ResponseType: "answer",
		Sections: []Section{
			{Type: SectionParagraph, Text: raw},
		},
		NextQuestions: []string{},
	}
}

// ValidationResult records post-hoc audit findings for a model reply. It is
// logged, never used to block the response.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Issues  []string `json:"issues"`
}
