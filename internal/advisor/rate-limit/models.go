// internal/advisor/rate-limit/models.go
package ratelimit

type Input struct {
	UserID string `json:"userId"`
}

type Output struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}
