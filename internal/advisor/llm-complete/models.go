// internal/advisor/llm-complete/models.go
package llmcomplete

import "career-advisor/internal/models"

type Input struct {
	SystemPrompt string
	History      []models.ConversationTurn
	UserMessage  string
}

type Output struct {
	Text       string `json:"text"`
	TokensUsed int    `json:"tokensUsed"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}
