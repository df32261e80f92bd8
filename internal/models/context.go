// internal/models/context.go
package models

// Intent classifies what the user is asking for. The taxonomy is fixed;
// detection is keyword based, not learned.
type Intent string

const (
	IntentCareerPlanning   Intent = "career_planning"
	IntentSkillAdvice      Intent = "skill_advice"
	IntentBusinessStrategy Intent = "business_strategy"
	IntentMarketResearch   Intent = "market_research"
	IntentGeneral          Intent = "general"
)

// DetectedContext is derived fresh for every request and never persisted
// outside the interaction log. Empty Country/Sector/Role mean "not detected",
// which downstream stages treat differently from a resolved value.
type DetectedContext struct {
	Country  string   `json:"country,omitempty"`
	Sector   string   `json:"sector,omitempty"`
	Role     string   `json:"role,omitempty"`
	Skills   []string `json:"skills"`
	Intent   Intent   `json:"intent"`
	Keywords []string `json:"keywords"`
}
