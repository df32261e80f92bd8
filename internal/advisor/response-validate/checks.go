// internal/advisor/response-validate/checks.go
package responsevalidate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"career-advisor/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// A check audits one aspect of a model reply. Checks only describe problems;
// they never modify the response.
type check struct {
	Name string
	Fn   func(raw string, resp *models.StructuredResponse, dataset *models.RetrievedDataset) []string
}

// checks run in a fixed order so results are deterministic for a given
// (responseText, dataset) pair.
var checks = []check{
	{Name: "schema", Fn: checkSchema},
	{Name: "formatting", Fn: checkFormatting},
	{Name: "citations", Fn: checkCitations},
	{Name: "locale", Fn: checkLocale},
	{Name: "currency", Fn: checkCurrency},
}

var (
	// Markdown control syntax the dashboard cannot render: heading/bold/italic
	// markers, inline code, bullet lines, and [text](url) links.
	markdownPattern = regexp.MustCompile("(?m)[#*_`]|^\\s*-\\s|\\[[^\\]]+\\]\\([^)]*\\)")

	percentPattern = regexp.MustCompile(`\d+(\.\d+)?\s*%`)

	usdPattern = regexp.MustCompile(`\$\s*\d|USD`)

	sentencePattern = regexp.MustCompile(`[^.!?\n]+`)
)

// wrongLocaleMarkers are references that signal the model ignored the target
// market and answered from a generic Western frame.
var wrongLocaleMarkers = []string{
	"Silicon Valley",
	"Western countries",
	"Western markets",
	"the United States",
	"the US market",
	"the UK market",
	"Wall Street",
	"Fortune 500",
}

var salaryKeywords = []string{"salary", "salaries", "earn", "pay", "paid", "income", "wage", "compensation"}

// checkSchema validates decodable replies against the structural contract.
// Replies that did not decode as JSON are already flagged by the parser
// fallback path; re-flagging them here would be noise.
func checkSchema(raw string, _ *models.StructuredResponse, _ *models.RetrievedDataset) []string {
	candidate := stripCodeFence(raw)
	if !json.Valid([]byte(candidate)) {
		return []string{"Response is not valid JSON"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchema),
		gojsonschema.NewStringLoader(candidate),
	)
	if err != nil {
		return []string{fmt.Sprintf("Schema validation could not run: %v", err)}
	}

	var issues []string
	for _, e := range result.Errors() {
		issues = append(issues, fmt.Sprintf("Schema violation at %s: %s", e.Field(), e.Description()))
	}
	return issues
}

// checkFormatting scans every text-bearing field for markdown syntax. The
// prompt forbids markdown because sections carry their own styling.
func checkFormatting(_ string, resp *models.StructuredResponse, _ *models.RetrievedDataset) []string {
	var issues []string
	for i, section := range resp.Sections {
		if markdownPattern.MatchString(section.Text) {
			issues = append(issues, fmt.Sprintf("Markdown syntax in section %d text", i))
		}
		for j, item := range section.Items {
			if markdownPattern.MatchString(item.Title) || markdownPattern.MatchString(item.Description) {
				issues = append(issues, fmt.Sprintf("Markdown syntax in section %d item %d", i, j))
			}
		}
	}
	return issues
}

// checkCitations flags statistics quoted without a sources section to back
// them. Percentages are the cheapest reliable signal of a statistic. The scan
// runs over the serialized reply so figures in item titles and next_questions
// count too.
func checkCitations(raw string, resp *models.StructuredResponse, _ *models.RetrievedDataset) []string {
	if !percentPattern.MatchString(raw) {
		return nil
	}

	for _, section := range resp.Sections {
		if section.Type == models.SectionSources && len(section.Items) > 0 {
			return nil
		}
	}
	return []string{"Response contains statistics but no source citations section"}
}

// checkLocale only fires when the target country is known; without it there
// is no ground truth to compare against.
func checkLocale(raw string, _ *models.StructuredResponse, dataset *models.RetrievedDataset) []string {
	if dataset == nil || dataset.Country == "" {
		return nil
	}

	var issues []string
	for _, marker := range wrongLocaleMarkers {
		if strings.Contains(raw, marker) {
			issues = append(issues, fmt.Sprintf("Response references %q instead of the %s market", marker, dataset.Country))
		}
	}
	return issues
}

// checkCurrency flags salary talk quoted in USD when the target country uses
// a different currency. Sentences mentioning both currencies pass: comparing
// a local figure to USD is legitimate.
func checkCurrency(raw string, _ *models.StructuredResponse, dataset *models.RetrievedDataset) []string {
	if dataset == nil || dataset.CountryCurrency == "" || dataset.CountryCurrency == "USD" {
		return nil
	}

	for _, sentence := range sentencePattern.FindAllString(raw, -1) {
		lower := strings.ToLower(sentence)
		salaryTalk := false
		for _, kw := range salaryKeywords {
			if strings.Contains(lower, kw) {
				salaryTalk = true
				break
			}
		}
		if !salaryTalk {
			continue
		}
		if usdPattern.MatchString(sentence) && !strings.Contains(sentence, dataset.CountryCurrency) {
			return []string{fmt.Sprintf("Salary figures quoted in USD instead of %s", dataset.CountryCurrency)}
		}
	}
	return nil
}
