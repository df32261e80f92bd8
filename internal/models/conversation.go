// internal/models/conversation.go
package models

import "encoding/json"

// ConversationTurn is one prior exchange in the conversation. Content is
// free text for user turns; assistant turns may carry the structured reply
// object, so it is kept as raw JSON until someone needs the text.
type ConversationTurn struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// Text returns the plain-text form of the turn content. Structured assistant
// replies are passed through as their compact JSON encoding.
func (t ConversationTurn) Text() string {
	var s string
	if err := json.Unmarshal(t.Content, &s); err == nil {
		return s
	}
	return string(t.Content)
}

// Attachment references an uploaded file the user included with the message.
// The model cannot open the file; it only sees this reference.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
