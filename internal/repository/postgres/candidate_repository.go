package postgres

import (
	"context"
	"errors"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// GetByID loads the profile and statistics counters. Scheduled interviews and
// feedback entries are loaded by their own repositories.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `
		SELECT
			id, name, email, phone, profile_photo_url, resume_url, linkedin_url,
			current_position, years_of_experience, skills,
			completed_interviews, average_rating, total_feedback_count,
			created_at, updated_at
		FROM candidates WHERE id = $1`

	var c domain.Candidate
	var skills []string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.ProfilePhotoURL, &c.ResumeURL, &c.LinkedInURL,
		&c.CurrentRole, &c.YearsOfExperience, pq.Array(&skills),
		&c.Statistics.CompletedInterviews, &c.Statistics.AverageRating, &c.Statistics.TotalFeedbackCount,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Skills = skills
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return &c, nil
}

func (r *candidateRepository) UpdateProfile(ctx context.Context, c *domain.Candidate) error {
	query := `
		UPDATE candidates SET
			name = $1, email = $2, phone = $3, profile_photo_url = $4, resume_url = $5,
			linkedin_url = $6, current_position = $7, years_of_experience = $8, skills = $9,
			updated_at = NOW()
		WHERE id = $10`

	result, err := r.db.Exec(ctx, query,
		c.Name, c.Email, c.Phone, c.ProfilePhotoURL, c.ResumeURL,
		c.LinkedInURL, c.CurrentRole, c.YearsOfExperience, textArray(c.Skills),
		c.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
