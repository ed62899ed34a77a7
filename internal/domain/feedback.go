package domain

import (
	"context"
	"time"

	"interview-marketplace-backend/pkg/rating"
)

// FeedbackSubject names whose statistics a feedback entry counts towards.
type FeedbackSubject string

const (
	SubjectCandidate   FeedbackSubject = "candidate"
	SubjectInterviewer FeedbackSubject = "interviewer"
)

// FeedbackEntry is append-only: it is never changed after it is recorded.
type FeedbackEntry struct {
	InterviewRequestID string                    `json:"interview_request_id"`
	FeedbackData       map[string]rating.Section `json:"feedback_data"`
	Rating             float64                   `json:"rating"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// FeedbackCounters are the aggregate statistics updated by each entry.
type FeedbackCounters struct {
	CompletedInterviews int
	TotalFeedbackCount  int
	TotalAccepted       int
	AverageRating       float64
}

type FeedbackRecord struct {
	Subject   FeedbackSubject
	SubjectID string
	Entry     FeedbackEntry
	// CompleteInterview moves both mirrors to Completed in the same transaction.
	CompleteInterview bool
	Actor             string
}

type FeedbackRepository interface {
	Exists(ctx context.Context, subject FeedbackSubject, subjectID, interviewRequestID string) (bool, error)
	// Record locks the subject, re-checks for an existing entry (ErrConflict),
	// stores the entry and persists the counters returned by apply.
	Record(ctx context.Context, rec *FeedbackRecord, apply func(FeedbackCounters) FeedbackCounters) (FeedbackCounters, error)
	// ListBySubject returns entries newest first. limit <= 0 means all.
	ListBySubject(ctx context.Context, subject FeedbackSubject, subjectID string, limit int) ([]FeedbackEntry, error)
}

type FeedbackUsecase interface {
	AddInterviewerFeedback(ctx context.Context, interviewerID, interviewRequestID string, feedback map[string]rating.Section) (*FeedbackEntry, error)
	AddCandidateFeedback(ctx context.Context, candidateID, interviewRequestID string, feedback map[string]rating.Section) (*FeedbackEntry, error)
	GetCandidateStatistics(ctx context.Context, candidateID string) (*CandidateStatistics, error)
	GetInterviewerStatistics(ctx context.Context, interviewerID string) (*InterviewerStatistics, error)
}
