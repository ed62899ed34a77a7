package domain

import (
	"context"
	"time"
)

// InterviewStatus values are shared by both mirrored records of an interview.
type InterviewStatus string

const (
	StatusRequested           InterviewStatus = "Requested"
	StatusApproved            InterviewStatus = "Approved"
	StatusCancelled           InterviewStatus = "Cancelled"
	StatusCompleted           InterviewStatus = "Completed"
	StatusRescheduleRequested InterviewStatus = "Reschedule Requested"
	StatusRescheduled         InterviewStatus = "Re-Scheduled"
)

// transitions lists the statuses reachable from each status.
// Completed and Cancelled are terminal.
var transitions = map[InterviewStatus][]InterviewStatus{
	StatusRequested:           {StatusApproved, StatusCancelled, StatusRescheduleRequested},
	StatusApproved:            {StatusCompleted, StatusCancelled, StatusRescheduleRequested},
	StatusRescheduleRequested: {StatusRescheduled, StatusCancelled},
	StatusRescheduled:         {StatusCompleted, StatusCancelled, StatusRescheduleRequested},
}

// CanTransition reports whether an interview may move from one status to another.
func CanTransition(from, to InterviewStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SourcesOf returns every status from which to is reachable.
func SourcesOf(to InterviewStatus) []InterviewStatus {
	var out []InterviewStatus
	for _, from := range []InterviewStatus{StatusRequested, StatusApproved, StatusRescheduleRequested, StatusRescheduled} {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// IsTerminal reports whether no further transition is possible.
func (s InterviewStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ScheduledInterview is the candidate-side record of an interview.
type ScheduledInterview struct {
	ID                    string          `json:"id"`
	CandidateID           string          `json:"candidate_id"`
	InterviewerID         string          `json:"interviewer_id"`
	InterviewerName       string          `json:"interviewer_name"`
	Date                  string          `json:"date"`
	From                  string          `json:"from"`
	To                    string          `json:"to"`
	ISODate               time.Time       `json:"iso_date"`
	Price                 string          `json:"price"`
	Status                InterviewStatus `json:"status"`
	RescheduleApproved    bool            `json:"reschedule_approved"`
	RescheduleRequestedBy string          `json:"reschedule_requested_by,omitempty"`
	MeetingLink           string          `json:"meeting_link,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// InterviewRequest is the interviewer-side mirror of a ScheduledInterview.
type InterviewRequest struct {
	ID                    string          `json:"id"`
	InterviewerID         string          `json:"interviewer_id"`
	CandidateID           string          `json:"candidate_id"`
	CandidateName         string          `json:"candidate_name"`
	Position              string          `json:"position"`
	Date                  string          `json:"date"`
	Time                  string          `json:"time"`
	From                  string          `json:"from"`
	To                    string          `json:"to"`
	ISODate               time.Time       `json:"iso_date"`
	Status                InterviewStatus `json:"status"`
	RescheduleApproved    bool            `json:"reschedule_approved"`
	// RescheduleRequestedBy is the role of the party that proposed the pending time.
	RescheduleRequestedBy string          `json:"reschedule_requested_by,omitempty"`
	MeetingLink           string          `json:"meeting_link,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// NewInterview holds both mirrors and the slot they consume. They are persisted together.
type NewInterview struct {
	Scheduled ScheduledInterview
	Request   InterviewRequest
	Slot      BookedSlot
}

// ScheduleChange replaces the schedule fields on both mirrors.
type ScheduleChange struct {
	Date     string
	Time     string
	From     string
	To       string
	ISODate  time.Time
	SlotDate string
}

// StatusChange describes one transition applied to both mirrors of an interview.
type StatusChange struct {
	InterviewRequestID string
	// CandidateID, when set, must own the candidate-side record.
	CandidateID string
	// From lists the statuses the records must currently hold.
	From                   []InterviewStatus
	To                     InterviewStatus
	CandidateMeetingLink   *string
	InterviewerMeetingLink *string
	RescheduleApproved     *bool
	RescheduleRequestedBy  *string
	Schedule               *ScheduleChange
	ReleaseSlot            bool
	PendingDelta           int
	Actor                  string
	Note                   string
}

// UpdateResult reports what happened on each side of a mirrored update.
type UpdateResult struct {
	InterviewerMatched  int64 `json:"interviewer_matched"`
	InterviewerModified int64 `json:"interviewer_modified"`
	CandidateMatched    int64 `json:"candidate_matched"`
	CandidateModified   int64 `json:"candidate_modified"`
}

// Matched is true when both mirrors were found.
func (r UpdateResult) Matched() bool {
	return r.InterviewerMatched > 0 && r.CandidateMatched > 0
}

// Modified is true when at least one mirror changed.
func (r UpdateResult) Modified() bool {
	return r.InterviewerModified > 0 || r.CandidateModified > 0
}

// Reschedule decisions carried by email links.
const (
	RescheduleActionApprove = "approve"
	RescheduleActionReject  = "reject"
)

// Transition is one row of the interview transition log.
type Transition struct {
	ID                 int64           `json:"id"`
	InterviewRequestID string          `json:"interview_request_id"`
	FromStatus         InterviewStatus `json:"from_status"`
	ToStatus           InterviewStatus `json:"to_status"`
	Actor              string          `json:"actor"`
	Note               string          `json:"note,omitempty"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

type InterviewRepository interface {
	Create(ctx context.Context, in *NewInterview) error
	GetRequest(ctx context.Context, id string) (*InterviewRequest, error)
	GetScheduled(ctx context.Context, id string) (*ScheduledInterview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]ScheduledInterview, error)
	ListByInterviewer(ctx context.Context, interviewerID string) ([]InterviewRequest, error)
	HasActiveBooking(ctx context.Context, interviewerID string, slot BookedSlot) (bool, error)
	// ApplyTransition updates both mirrors in one transaction. It returns
	// ErrNotFound when either mirror is missing and ErrConflict when neither
	// mirror is in one of change.From.
	ApplyTransition(ctx context.Context, change StatusChange) (UpdateResult, error)
	ListTransitions(ctx context.Context, interviewRequestID string) ([]Transition, error)
}

// ScheduleRequest is the input of a booking.
type ScheduleRequest struct {
	CandidateID   string `json:"candidate_id" binding:"required,uuid"`
	InterviewerID string `json:"interviewer_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required"`
	From          string `json:"from" binding:"required,clock12h"`
	To            string `json:"to" binding:"required,clock12h"`
	Price         string `json:"price" binding:"required"`
	Position      string `json:"position" binding:"max=100"`
}

// RescheduleRequest proposes a new date and time for an interview.
type RescheduleRequest struct {
	InterviewRequestID string `json:"-"`
	CandidateID        string `json:"candidate_id" binding:"required"`
	Date               string `json:"date" binding:"required"`
	From               string `json:"from" binding:"required"`
	To                 string `json:"to" binding:"required"`
	// RequestedBy is RoleCandidate or RoleInterviewer. Empty means candidate.
	RequestedBy string `json:"-"`
}

type InterviewUsecase interface {
	ScheduleInterview(ctx context.Context, req ScheduleRequest) (*ScheduledInterview, error)
	ListScheduledInterviews(ctx context.Context, candidateID string) ([]ScheduledInterview, error)
	ListInterviewRequests(ctx context.Context, interviewerID string) ([]InterviewRequest, error)
	UpdateInterviewRequest(ctx context.Context, interviewRequestID string, status InterviewStatus) (*InterviewRequest, error)
	RequestReschedule(ctx context.Context, req RescheduleRequest) (*InterviewRequest, error)
	ApproveReschedule(ctx context.Context, interviewRequestID, candidateID string) (*InterviewRequest, error)
	RejectReschedule(ctx context.Context, interviewRequestID, candidateID string) (*InterviewRequest, error)
	// DecideRescheduleByLink approves or rejects through a signed email link.
	DecideRescheduleByLink(ctx context.Context, interviewRequestID, action, token string) (*InterviewRequest, error)
	GetHistory(ctx context.Context, interviewRequestID string) ([]Transition, error)
}
