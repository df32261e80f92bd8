// internal/advisor/context-detect/detector_test.go
package contextdetect

import (
	"testing"

	"career-advisor/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetect_CountryFromMessage(t *testing.T) {
	ctx := Detect("I want to start a business in Ghana", &models.UserProfile{})
	assert.Equal(t, "Ghana", ctx.Country)
	assert.Equal(t, models.IntentBusinessStrategy, ctx.Intent)
}

func TestDetect_CountryFromCity(t *testing.T) {
	ctx := Detect("What jobs are available in Nairobi right now?", nil)
	assert.Equal(t, "Kenya", ctx.Country)
}

func TestDetect_CountryFallsBackToProfile(t *testing.T) {
	profile := &models.UserProfile{Country: "Nigeria"}
	ctx := Detect("What career should I pursue?", profile)
	assert.Equal(t, "Nigeria", ctx.Country)
}

func TestDetect_IntentPriority(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.Intent
	}{
		{"business strategy wins over career", "I want to start a business instead of a job", models.IntentBusinessStrategy},
		{"skill advice", "What skills should I learn this year?", models.IntentSkillAdvice},
		{"career planning", "How do I grow my career?", models.IntentCareerPlanning},
		{"market research", "What are the market trends in fintech?", models.IntentMarketResearch},
		{"general fallback", "Hello, can you help me?", models.IntentGeneral},
		{"start without business is not strategy", "Where do I start my job search?", models.IntentCareerPlanning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Detect(tt.message, nil)
			assert.Equal(t, tt.want, ctx.Intent)
		})
	}
}

func TestDetect_SectorFirstMatchWins(t *testing.T) {
	// Mentions both tech and finance; the sector table lists tech first.
	ctx := Detect("Should I join a tech company or a bank?", nil)
	assert.Equal(t, "Technology", ctx.Sector)
}

func TestDetect_SectorFallsBackToProfile(t *testing.T) {
	profile := &models.UserProfile{Sector: "Agriculture"}
	ctx := Detect("What should I do next?", profile)
	assert.Equal(t, "Agriculture", ctx.Sector)
}

func TestDetect_Role(t *testing.T) {
	ctx := Detect("How much does a data analyst earn?", nil)
	assert.Equal(t, "Data Analyst", ctx.Role)
}

func TestDetect_KeywordsFilterShortTokens(t *testing.T) {
	ctx := Detect("how do I get a job in IT", nil)
	for _, kw := range ctx.Keywords {
		assert.Greater(t, len(kw), 3)
	}
}

func TestDetect_SkillsCopiedFromProfile(t *testing.T) {
	profile := &models.UserProfile{Skills: []string{"python", "sql"}}
	ctx := Detect("anything", profile)
	assert.Equal(t, []string{"python", "sql"}, ctx.Skills)
}

func TestDetect_Deterministic(t *testing.T) {
	profile := &models.UserProfile{Country: "Ghana", Skills: []string{"excel"}}
	msg := "I want to learn data skills for a fintech job in Lagos"

	first := Detect(msg, profile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Detect(msg, profile))
	}
}

func TestDetect_NilProfile(t *testing.T) {
	ctx := Detect("", nil)
	assert.Equal(t, models.IntentGeneral, ctx.Intent)
	assert.NotNil(t, ctx.Skills)
	assert.NotNil(t, ctx.Keywords)
	assert.Empty(t, ctx.Country)
}
