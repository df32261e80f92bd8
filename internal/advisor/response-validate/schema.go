// internal/advisor/response-validate/schema.go
package responsevalidate

// responseSchema is the machine-checkable half of the output contract the
// prompt states in prose. Checked post-hoc; violations are logged, never
// shown to the user.
const responseSchema = `{
  "type": "object",
  "required": ["response_type", "sections"],
  "properties": {
    "response_type": {"type": "string"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {
            "type": "string",
            "enum": ["heading", "paragraph", "emphasis", "list", "sources"]
          },
          "text": {"type": "string"},
          "intent": {"type": "string"},
          "style": {
            "type": "string",
            "enum": ["plain", "cards", "steps"]
          },
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "organization": {"type": "string"},
                "url": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "next_questions": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`
