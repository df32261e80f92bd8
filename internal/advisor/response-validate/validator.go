// internal/advisor/response-validate/validator.go
package responsevalidate

import (
	"career-advisor/internal/models"
)

// Validate runs every audit check against a model reply. Pure: the same
// (responseText, dataset) pair always yields the same result, and neither
// input is modified. Findings are logged for quality review, never used to
// block the response.
func Validate(raw string, dataset *models.RetrievedDataset) models.ValidationResult {
	resp := Parse(raw)

	issues := []string{}
	for _, c := range checks {
		issues = append(issues, c.Fn(raw, resp, dataset)...)
	}

	return models.ValidationResult{
		IsValid: len(issues) == 0,
		Issues:  issues,
	}
}
