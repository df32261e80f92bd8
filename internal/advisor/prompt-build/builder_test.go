// internal/advisor/prompt-build/builder_test.go
package promptbuild

import (
	"strings"
	"testing"

	"career-advisor/internal/models"

	"github.com/stretchr/testify/assert"
)

func testDataset() *models.RetrievedDataset {
	ds := models.NewEmptyDataset()
	ds.Country = "Ghana"
	ds.CountryCurrency = "GHS"
	ds.SalaryRecords = []models.SalaryRecord{{
		Role: "Software Developer", MinSalary: 60000, MaxSalary: 140000, Currency: "GHS", Year: 2025,
		Source: models.Source{Organization: "PayScaleGH", URL: "https://paygh.example.com"},
	}}
	return ds
}

func TestBuild_PersonaByMode(t *testing.T) {
	career := Build(&Input{Message: "hi", Mode: models.ModeCareer, Dataset: models.NewEmptyDataset()})
	business := Build(&Input{Message: "hi", Mode: models.ModeBusiness, Dataset: models.NewEmptyDataset()})

	assert.Contains(t, career.SystemPrompt, "career advisor")
	assert.Contains(t, business.SystemPrompt, "business advisor")
	assert.NotEqual(t, career.SystemPrompt, business.SystemPrompt)
}

func TestBuild_ContractAlwaysPresent(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeCareer, models.ModeBusiness} {
		out := Build(&Input{Message: "hi", Mode: mode, Dataset: models.NewEmptyDataset()})
		assert.Contains(t, out.SystemPrompt, "single JSON object")
		assert.Contains(t, out.SystemPrompt, `"sources"`)
		assert.Contains(t, out.SystemPrompt, "Never use markdown")
	}
}

func TestBuild_DatasetSerializedIntoPrompt(t *testing.T) {
	out := Build(&Input{Message: "how much do developers earn?", Mode: models.ModeCareer, Dataset: testDataset()})
	assert.Contains(t, out.UserMessage, "Salary records")
	assert.Contains(t, out.UserMessage, "PayScaleGH")
	assert.Contains(t, out.UserMessage, "140000")
}

func TestBuild_EmptyDatasetWarnsAgainstInvention(t *testing.T) {
	out := Build(&Input{Message: "how much do developers earn?", Mode: models.ModeCareer, Dataset: models.NewEmptyDataset()})
	assert.Contains(t, out.UserMessage, "none available")
	assert.Contains(t, out.UserMessage, "do not invent statistics")
}

func TestBuild_AttachmentsPrepended(t *testing.T) {
	out := Build(&Input{
		Message: "review my cv",
		Mode:    models.ModeCareer,
		Dataset: models.NewEmptyDataset(),
		Attachments: []models.Attachment{
			{Name: "cv.pdf", URL: "https://files.example.com/cv.pdf", Type: "application/pdf"},
		},
	})

	assert.Contains(t, out.UserMessage, "cv.pdf")
	assert.Contains(t, out.UserMessage, "cannot open them")
	// Attachment block comes before the question.
	assert.Less(t, strings.Index(out.UserMessage, "cv.pdf"), strings.Index(out.UserMessage, "User question"))
}

func TestBuild_QuestionAlwaysLast(t *testing.T) {
	out := Build(&Input{
		Message: "what next?",
		Mode:    models.ModeCareer,
		Profile: &models.UserProfile{Country: "Ghana", Skills: []string{"sql"}},
		Dataset: testDataset(),
	})
	assert.True(t, strings.HasSuffix(out.UserMessage, "User question: what next?"))
}

func TestBuild_NoIO(t *testing.T) {
	// Pure function: identical inputs give identical outputs.
	in := &Input{Message: "hi", Mode: models.ModeBusiness, Dataset: testDataset()}
	assert.Equal(t, Build(in), Build(in))
}
