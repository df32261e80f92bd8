// internal/advisor/rate-limit/config.go
package ratelimit

import "time"

type Config struct {
	Limit  int
	Window time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Limit:  50,
		Window: time.Hour,
	}
}
