// internal/advisor/data-retrieve/models.go
package dataretrieve

import "career-advisor/internal/models"

type Input struct {
	Context models.DetectedContext `json:"context"`
}

type Output struct {
	Dataset *models.RetrievedDataset `json:"dataset"`
}
