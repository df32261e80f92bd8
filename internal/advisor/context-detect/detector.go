// internal/advisor/context-detect/detector.go
package contextdetect

import (
	"strings"

	"career-advisor/internal/models"
)

const Stage = "context-detect"

// minKeywordLen filters noise tokens out of the telemetry keyword list.
const minKeywordLen = 3

var intentRules = []intentRule{
	{
		Match: func(msg string) bool {
			return strings.Contains(msg, "start") && strings.Contains(msg, "business")
		},
		Intent: models.IntentBusinessStrategy,
	},
	{
		Match: func(msg string) bool {
			return strings.Contains(msg, "learn") || strings.Contains(msg, "skill")
		},
		Intent: models.IntentSkillAdvice,
	},
	{
		Match: func(msg string) bool {
			return strings.Contains(msg, "career") || strings.Contains(msg, "job")
		},
		Intent: models.IntentCareerPlanning,
	},
	{
		Match: func(msg string) bool {
			return strings.Contains(msg, "market") || strings.Contains(msg, "trends")
		},
		Intent: models.IntentMarketResearch,
	},
}

// Detect infers the request context from the message text and the stored
// profile. It is deterministic and touches no store or network: the same
// (message, profile) always yields the same context.
func Detect(message string, profile *models.UserProfile) models.DetectedContext {
	lower := strings.ToLower(message)

	ctx := models.DetectedContext{
		Country:  detectCountry(lower, profile),
		Sector:   firstRuleMatch(lower, sectorRules),
		Role:     firstRuleMatch(lower, roleRules),
		Intent:   detectIntent(lower),
		Keywords: extractKeywords(message),
		Skills:   []string{},
	}

	if profile != nil && len(profile.Skills) > 0 {
		ctx.Skills = append(ctx.Skills, profile.Skills...)
	}
	if ctx.Sector == "" && profile != nil {
		ctx.Sector = profile.Sector
	}

	return ctx
}

// detectCountry matches country names and major cities; when nothing in the
// message matches it falls back to the profile location.
func detectCountry(lower string, profile *models.UserProfile) string {
	for _, rule := range countryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Country
			}
		}
	}
	if profile != nil {
		return profile.Country
	}
	return ""
}

// firstRuleMatch walks the ordered rule list and returns the first result
// whose keyword set intersects the message.
func firstRuleMatch(lower string, rules []keywordRule) string {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Result
			}
		}
	}
	return ""
}

func detectIntent(lower string) models.Intent {
	for _, rule := range intentRules {
		if rule.Match(lower) {
			return rule.Intent
		}
	}
	return models.IntentGeneral
}

// extractKeywords returns whitespace tokens longer than minKeywordLen. Used
// only for debugging and telemetry, never for retrieval.
func extractKeywords(message string) []string {
	keywords := []string{}
	for _, tok := range strings.Fields(message) {
		if len(tok) > minKeywordLen {
			keywords = append(keywords, tok)
		}
	}
	return keywords
}
