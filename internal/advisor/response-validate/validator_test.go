// internal/advisor/response-validate/validator_test.go
package responsevalidate

import (
	"testing"

	"career-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanReply = `{"response_type":"answer","sections":[{"type":"paragraph","text":"The technology sector in Ghana is expanding, driven by fintech and mobile services."},{"type":"sources","items":[{"organization":"Ghana Statistical Service","url":"https://statsghana.gov.gh"}]}],"next_questions":["Which skills pay best in Accra?"]}`

func ghanaDataset() *models.RetrievedDataset {
	ds := models.NewEmptyDataset()
	ds.Country = "Ghana"
	ds.CountryCurrency = "GHS"
	return ds
}

func TestValidate_CleanReplyPasses(t *testing.T) {
	result := Validate(cleanReply, ghanaDataset())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
}

func TestValidate_StatisticsWithoutSources(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Demand for data skills grew 40% last year."}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Response contains statistics but no source citations section")
}

func TestValidate_StatisticsWithSourcesPass(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Demand for data skills grew 40% last year."},{"type":"sources","items":[{"organization":"JobberMan","url":"https://jobberman.com.gh"}]}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.True(t, result.IsValid)
}

func TestValidate_StatisticsInItemTitleNeedSources(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"list","style":"cards","items":[{"title":"Fintech grew 25%","description":"Strong hiring across Accra."}]}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Response contains statistics but no source citations section")
}

func TestValidate_StatisticsInNextQuestionsNeedSources(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Fintech hiring is strong."}],"next_questions":["Why did demand grow 40% last year?"]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Response contains statistics but no source citations section")
}

func TestValidate_MarkdownInSectionText(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Focus on **cloud** skills."}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Markdown syntax in section 0 text")
}

func TestValidate_WrongLocaleReference(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Look at how Silicon Valley startups hire engineers."}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "Silicon Valley")
	assert.Contains(t, result.Issues[0], "Ghana")
}

func TestValidate_LocaleCheckSkippedWithoutCountry(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Look at how Silicon Valley startups hire engineers."}],"next_questions":[]}`

	result := Validate(raw, models.NewEmptyDataset())

	assert.True(t, result.IsValid)
}

func TestValidate_SalaryInUSD(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Senior developers earn between $2,000 and $4,000 monthly."}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Salary figures quoted in USD instead of GHS")
}

func TestValidate_SalaryInLocalCurrencyPasses(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Senior developers earn around GHS 15,000 monthly, roughly $1,200."}],"next_questions":[]}`

	result := Validate(raw, ghanaDataset())

	assert.True(t, result.IsValid)
}

func TestValidate_CurrencyCheckSkippedForUSDCountry(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Developers earn around $90,000 in annual salary."}],"next_questions":[]}`

	ds := models.NewEmptyDataset()
	ds.Country = "United States"
	ds.CountryCurrency = "USD"

	result := Validate(raw, ds)

	assert.True(t, result.IsValid)
}

func TestValidate_UnparseableReply(t *testing.T) {
	raw := "Here is some advice: learn **cloud skills** and network widely."

	result := Validate(raw, ghanaDataset())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues, "Response is not valid JSON")
	assert.Contains(t, result.Issues, "Markdown syntax in section 0 text")
}

func TestValidate_Deterministic(t *testing.T) {
	raw := `{"response_type":"answer","sections":[{"type":"paragraph","text":"Demand grew 40% in Silicon Valley where salaries hit $150,000."}],"next_questions":[]}`
	ds := ghanaDataset()

	first := Validate(raw, ds)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Validate(raw, ds))
	}
}
