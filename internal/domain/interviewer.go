package domain

import (
	"context"
	"time"
)

type Interviewer struct {
	ID                string                `json:"id"`
	Name              string                `json:"name" validate:"required,min=2,max=100,valid_name"`
	Email             string                `json:"email" validate:"required,email"`
	Phone             string                `json:"phone" validate:"omitempty,valid_phone"`
	ProfilePhotoURL   string                `json:"profile_photo_url" validate:"omitempty,url"`
	ProfessionalTitle string                `json:"professional_title" validate:"max=100,no_emoji"`
	Company           string                `json:"company" validate:"max=100"`
	YearsOfExperience *int                  `json:"years_of_experience,omitempty" validate:"omitempty,min=0,max=60"`
	Skills            []string              `json:"skills" validate:"max=50,dive,min=1,max=50"`
	Price             string                `json:"price" validate:"omitempty,numeric"`
	Availability      Availability          `json:"availability"`
	BookedSlots       []BookedSlot          `json:"booked_slots,omitempty"`
	InterviewRequests []InterviewRequest    `json:"interview_requests,omitempty"`
	Statistics        InterviewerStatistics `json:"statistics"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type InterviewerStatistics struct {
	CompletedInterviews int             `json:"completed_interviews"`
	PendingRequests     int             `json:"pending_requests"`
	TotalAccepted       int             `json:"total_accepted"`
	AverageRating       float64         `json:"average_rating"`
	TotalFeedbackCount  int             `json:"total_feedback_count"`
	Feedbacks           []FeedbackEntry `json:"feedbacks"`
}

type InterviewerRepository interface {
	// GetByID returns nil, nil when the interviewer does not exist. The
	// returned aggregate includes availability windows and booked slots.
	GetByID(ctx context.Context, id string) (*Interviewer, error)
	UpdateProfile(ctx context.Context, i *Interviewer) error
}
