// internal/models/profile.go
package models

// Mode selects the advisory persona for a user.
type Mode string

const (
	ModeCareer   Mode = "career"
	ModeBusiness Mode = "business"
)

// UserProfile is the stored onboarding profile. The advice pipeline only
// reads it; ownership stays with the profile service.
type UserProfile struct {
	UserID             string   `json:"userId"`
	FullName           string   `json:"fullName"`
	Mode               Mode     `json:"mode"`
	Country            string   `json:"country"`
	Sector             string   `json:"sector"`
	Skills             []string `json:"skills"`
	OnboardingComplete bool     `json:"onboardingComplete"`
}

// EffectiveMode falls back to career advice when the profile never picked one.
func (p *UserProfile) EffectiveMode() Mode {
	if p == nil || (p.Mode != ModeCareer && p.Mode != ModeBusiness) {
		return ModeCareer
	}
	return p.Mode
}
