// internal/advisor/llm-complete/config.go
package llmcomplete

import "time"

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

func LoadConfig() *Config {
	return &Config{
		Model:       "gpt-4o-mini",
		MaxTokens:   1024,
		Temperature: 0.4,
		Timeout:     60 * time.Second,
		MaxRetries:  2,
	}
}
