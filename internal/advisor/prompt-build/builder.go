// internal/advisor/prompt-build/builder.go
package promptbuild

import (
	"encoding/json"
	"fmt"
	"strings"

	"career-advisor/internal/models"
)

const Stage = "prompt-build"

type Input struct {
	Message     string
	Mode        models.Mode
	Context     models.DetectedContext
	Profile     *models.UserProfile
	Dataset     *models.RetrievedDataset
	Attachments []models.Attachment
}

type Output struct {
	SystemPrompt string
	UserMessage  string
}

// Build assembles the system instruction and the user message for the
// completion call. It performs no I/O; everything the model may cite is
// serialized into the prompt so claims stay traceable to the dataset.
func Build(input *Input) *Output {
	return &Output{
		SystemPrompt: systemPrompt(input.Mode),
		UserMessage:  userMessage(input),
	}
}

func systemPrompt(mode models.Mode) string {
	if mode == models.ModeBusiness {
		return businessPersona
	}
	return careerPersona
}

func userMessage(input *Input) string {
	var parts []string

	// The model cannot open uploads; it only gets told they exist.
	if len(input.Attachments) > 0 {
		var b strings.Builder
		b.WriteString("The user attached the following files (you cannot open them; acknowledge them and work with what the user wrote):")
		for _, a := range input.Attachments {
			b.WriteString(fmt.Sprintf("\n- %s (%s): %s", a.Name, a.Type, a.URL))
		}
		parts = append(parts, b.String())
	}

	if input.Profile != nil {
		profile := map[string]interface{}{
			"country": input.Profile.Country,
			"sector":  input.Profile.Sector,
			"skills":  input.Profile.Skills,
		}
		parts = append(parts, "User profile:\n"+marshalIndent(profile))
	}

	contextBlock := map[string]interface{}{
		"country": input.Context.Country,
		"sector":  input.Context.Sector,
		"role":    input.Context.Role,
		"intent":  input.Context.Intent,
	}
	parts = append(parts, "Detected question context:\n"+marshalIndent(contextBlock))

	parts = append(parts, datasetBlock(input.Dataset))
	parts = append(parts, "User question: "+input.Message)

	return strings.Join(parts, "\n\n")
}

func datasetBlock(ds *models.RetrievedDataset) string {
	if ds == nil || ds.TotalItems() == 0 {
		return "Reference data: none available for this question. Say so when asked for figures; do not invent statistics."
	}

	var b strings.Builder
	b.WriteString("Reference data (the only permitted source for figures):")
	if len(ds.MarketInsights) > 0 {
		b.WriteString("\nMarket insights:\n" + marshalIndent(ds.MarketInsights))
	}
	if len(ds.SalaryRecords) > 0 {
		b.WriteString("\nSalary records:\n" + marshalIndent(ds.SalaryRecords))
	}
	if len(ds.SkillsDemand) > 0 {
		b.WriteString("\nSkills demand:\n" + marshalIndent(ds.SkillsDemand))
	}
	if len(ds.BusinessEnvironment) > 0 {
		b.WriteString("\nBusiness environment:\n" + marshalIndent(ds.BusinessEnvironment))
	}
	return b.String()
}

func marshalIndent(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
