package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name" validate:"required,min=2,max=100,valid_name"`
	Email               string               `json:"email" validate:"required,email"`
	Phone               string               `json:"phone" validate:"omitempty,valid_phone"`
	ProfilePhotoURL     string               `json:"profile_photo_url" validate:"omitempty,url"`
	ResumeURL           string               `json:"resume_url" validate:"omitempty,url"`
	LinkedInURL         string               `json:"linkedin_url" validate:"omitempty,url"`
	CurrentRole         string               `json:"current_role" validate:"max=100,no_emoji"`
	YearsOfExperience   *int                 `json:"years_of_experience,omitempty" validate:"omitempty,min=0,max=60"`
	Skills              []string             `json:"skills" validate:"max=50,dive,min=1,max=50"`
	ScheduledInterviews []ScheduledInterview `json:"scheduled_interviews,omitempty"`
	Statistics          CandidateStatistics  `json:"statistics"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type CandidateStatistics struct {
	CompletedInterviews int             `json:"completed_interviews"`
	AverageRating       float64         `json:"average_rating"`
	TotalFeedbackCount  int             `json:"total_feedback_count"`
	Feedbacks           []FeedbackEntry `json:"feedbacks"`
}

type CandidateRepository interface {
	// GetByID returns nil, nil when the candidate does not exist.
	GetByID(ctx context.Context, id string) (*Candidate, error)
	UpdateProfile(ctx context.Context, c *Candidate) error
}
