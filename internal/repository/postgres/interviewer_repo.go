package postgres

import (
	"context"
	"errors"
	"fmt"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type interviewerRepo struct {
	db *pgxpool.Pool
}

func NewInterviewerRepository(db *pgxpool.Pool) domain.InterviewerRepository {
	return &interviewerRepo{db: db}
}

func (r *interviewerRepo) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	query := `
		SELECT
			id, name, email, phone, profile_photo_url, professional_title, company,
			years_of_experience, skills, price,
			completed_interviews, pending_requests, total_accepted, average_rating, total_feedback_count,
			created_at, updated_at
		FROM interviewers WHERE id = $1`

	var i domain.Interviewer
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Email, &i.Phone, &i.ProfilePhotoURL, &i.ProfessionalTitle, &i.Company,
		&i.YearsOfExperience, pq.Array(&skills), &i.Price,
		&i.Statistics.CompletedInterviews, &i.Statistics.PendingRequests, &i.Statistics.TotalAccepted,
		&i.Statistics.AverageRating, &i.Statistics.TotalFeedbackCount,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	i.Skills = skills
	if i.Skills == nil {
		i.Skills = []string{}
	}

	windows, err := listWindows(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	i.Availability.Dates = windows

	booked, err := listBookedSlots(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slots: %w", err)
	}
	i.BookedSlots = booked

	return &i, nil
}

func (r *interviewerRepo) UpdateProfile(ctx context.Context, i *domain.Interviewer) error {
	query := `
		UPDATE interviewers SET
			name = $1, email = $2, phone = $3, profile_photo_url = $4, professional_title = $5,
			company = $6, years_of_experience = $7, skills = $8, price = $9,
			updated_at = NOW()
		WHERE id = $10`

	result, err := r.db.Exec(ctx, query,
		i.Name, i.Email, i.Phone, i.ProfilePhotoURL, i.ProfessionalTitle,
		i.Company, i.YearsOfExperience, textArray(i.Skills), i.Price,
		i.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
