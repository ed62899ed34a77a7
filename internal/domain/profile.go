package domain

import "context"

// CompletionSection is one weighted entry of a profile checklist.
type CompletionSection struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Completed  bool   `json:"completed"`
}

// MissingSection is a checklist entry the profile does not satisfy yet.
type MissingSection struct {
	Name          string   `json:"name"`
	Percentage    int      `json:"percentage"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

type ProfileCompletion struct {
	TotalPercentage int                 `json:"total_percentage"`
	IsComplete      bool                `json:"is_complete"`
	Sections        []CompletionSection `json:"sections"`
	MissingSections []MissingSection    `json:"missing_sections"`
}

type ProfileUsecase interface {
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	GetInterviewer(ctx context.Context, id string) (*Interviewer, error)
	UpdateCandidateProfile(ctx context.Context, c *Candidate) (*ProfileCompletion, error)
	UpdateInterviewerProfile(ctx context.Context, i *Interviewer) (*ProfileCompletion, error)
	GetCandidateProfileCompletion(ctx context.Context, id string) (*ProfileCompletion, error)
	GetInterviewerProfileCompletion(ctx context.Context, id string) (*ProfileCompletion, error)
}
