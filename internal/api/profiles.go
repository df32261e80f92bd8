// internal/api/profiles.go
package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"career-advisor/internal/models"

	"github.com/lib/pq"
)

// ProfileStore reads onboarding profiles. The pipeline never writes them;
// ownership stays with the profile service that fills them in.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Get returns the stored profile, or (nil, nil) when the user has none yet.
func (s *ProfileStore) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, full_name, mode, COALESCE(country, ''), COALESCE(sector, ''),
		       COALESCE(skills, '{}'), onboarding_complete
		FROM user_profiles
		WHERE user_id = $1`

	var profile models.UserProfile
	var mode string
	var skills pq.StringArray

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&mode,
		&profile.Country,
		&profile.Sector,
		&skills,
		&profile.OnboardingComplete,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.Mode = models.Mode(mode)
	profile.Skills = skills
	return &profile, nil
}
