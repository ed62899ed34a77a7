package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/audit"
	"interview-marketplace-backend/pkg/auth"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/meeting"
	"interview-marketplace-backend/pkg/timeslot"
)

// Double-booking policies.
const (
	ConflictPolicyAllow  = "allow"
	ConflictPolicyReject = "reject"
)

const defaultLockTTL = 10 * time.Second

type InterviewUsecaseDeps struct {
	Candidates   domain.CandidateRepository
	Interviewers domain.InterviewerRepository
	Interviews   domain.InterviewRepository
	Locker       domain.RecordLocker
	Notifier     domain.Notifier
	Audit        *audit.Logger
	NewID        domain.IDGenerator
	MeetingLinks *meeting.Links
	// ConflictPolicy is ConflictPolicyAllow or ConflictPolicyReject.
	ConflictPolicy string
	Location       *time.Location
	LockTTL        time.Duration
	// AppBaseURL prefixes the approve/reject links in reschedule emails.
	AppBaseURL string
	// ActionTokens signs those links and UsedTokens makes them single-use.
	// Without both, reschedule emails carry no links.
	ActionTokens *auth.ActionTokens
	UsedTokens   domain.ActionTokenStore
}

type interviewUsecase struct {
	candidates     domain.CandidateRepository
	interviewers   domain.InterviewerRepository
	interviews     domain.InterviewRepository
	locker         domain.RecordLocker
	notifier       domain.Notifier
	audit          *audit.Logger
	newID          domain.IDGenerator
	links          *meeting.Links
	conflictPolicy string
	loc            *time.Location
	lockTTL        time.Duration
	appBaseURL     string
	actionTokens   *auth.ActionTokens
	usedTokens     domain.ActionTokenStore
}

func NewInterviewUsecase(deps InterviewUsecaseDeps) domain.InterviewUsecase {
	u := &interviewUsecase{
		candidates:     deps.Candidates,
		interviewers:   deps.Interviewers,
		interviews:     deps.Interviews,
		locker:         deps.Locker,
		notifier:       deps.Notifier,
		audit:          deps.Audit,
		newID:          deps.NewID,
		links:          deps.MeetingLinks,
		conflictPolicy: deps.ConflictPolicy,
		loc:            deps.Location,
		lockTTL:        deps.LockTTL,
		appBaseURL:     strings.TrimRight(deps.AppBaseURL, "/"),
		actionTokens:   deps.ActionTokens,
		usedTokens:     deps.UsedTokens,
	}
	if u.loc == nil {
		u.loc = time.UTC
	}
	if u.lockTTL <= 0 {
		u.lockTTL = defaultLockTTL
	}
	if u.links == nil {
		u.links = meeting.NewLinks(nil, deps.AppBaseURL)
	}
	if u.conflictPolicy == "" {
		u.conflictPolicy = ConflictPolicyAllow
	}
	if u.notifier == nil {
		u.notifier = NewNotifier(nil, nil, nil)
	}
	return u
}

func (u *interviewUsecase) ScheduleInterview(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduledInterview, error) {
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	req.InterviewerID = strings.TrimSpace(req.InterviewerID)
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)

	if blank(req.CandidateID, req.InterviewerID, req.Date, req.From, req.To, req.Price) {
		return nil, apperror.BadRequest("candidate_id, interviewer_id, date, from, to and price are required")
	}
	day, err := timeslot.ParseScheduleDate(req.Date, u.loc)
	if err != nil {
		return nil, apperror.BadRequest("Invalid date, expected YYYY-MM-DD or MM/DD/YYYY")
	}
	if !timeslot.IsTwelveHourClock(req.From) || !timeslot.IsTwelveHourClock(req.To) {
		return nil, apperror.BadRequest("Invalid time, expected a 12-hour clock like 10:00 AM")
	}

	candidate, err := u.candidates.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	interviewer, err := u.interviewers.GetByID(ctx, req.InterviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}

	slot := domain.BookedSlot{Date: timeslot.SlotDate(day), From: req.From, To: req.To}
	if u.conflictPolicy == ConflictPolicyReject {
		taken, err := u.interviews.HasActiveBooking(ctx, interviewer.ID, slot)
		if err != nil {
			return nil, repoError(err, "Interviewer not found", "")
		}
		if taken {
			return nil, apperror.Conflict("This slot is already booked")
		}
	}

	start, err := timeslot.Instant(day, req.From)
	if err != nil {
		return nil, apperror.BadRequest("Invalid start time")
	}

	id := u.newID()
	slot.InterviewRequestID = id
	display := timeslot.DisplayDate(day)

	in := &domain.NewInterview{
		Scheduled: domain.ScheduledInterview{
			ID:              id,
			CandidateID:     candidate.ID,
			InterviewerID:   interviewer.ID,
			InterviewerName: interviewer.Name,
			Date:            display,
			From:            req.From,
			To:              req.To,
			ISODate:         start,
			Price:           strings.TrimSpace(req.Price),
			Status:          domain.StatusRequested,
		},
		Request: domain.InterviewRequest{
			ID:            id,
			InterviewerID: interviewer.ID,
			CandidateID:   candidate.ID,
			CandidateName: candidate.Name,
			Position:      strings.TrimSpace(req.Position),
			Date:          display,
			Time:          timeslot.TimeRange(req.From, req.To),
			From:          req.From,
			To:            req.To,
			ISODate:       start,
			Status:        domain.StatusRequested,
		},
		Slot: slot,
	}

	if err := u.interviews.Create(ctx, in); err != nil {
		return nil, repoError(err, "Interviewer not found", "Interview could not be created")
	}

	u.audit.Transition(ctx, audit.EventInterviewScheduled, id, candidate.ID, "", string(domain.StatusRequested))
	logger.Log.Info("interview scheduled", "interview_request_id", id, "candidate_id", candidate.ID, "interviewer_id", interviewer.ID)

	u.notifier.Notify(ctx, domain.Notice{
		UserID:   interviewer.ID,
		Email:    interviewer.Email,
		Subject:  "New interview request",
		Template: domain.TemplateInterviewRequested,
		Data: domain.InterviewNotice{
			RecipientName:   interviewer.Name,
			CounterpartName: candidate.Name,
			Position:        in.Request.Position,
			Date:            display,
			Time:            in.Request.Time,
			Status:          domain.StatusRequested,
		},
	})

	out := in.Scheduled
	return &out, nil
}

func (u *interviewUsecase) ListScheduledInterviews(ctx context.Context, candidateID string) ([]domain.ScheduledInterview, error) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	list, err := u.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	return list, nil
}

func (u *interviewUsecase) ListInterviewRequests(ctx context.Context, interviewerID string) ([]domain.InterviewRequest, error) {
	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}
	list, err := u.interviews.ListByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	return list, nil
}

// lock serialises writers of one interview. The release func is always safe to call.
func (u *interviewUsecase) lock(ctx context.Context, id string) (func(), error) {
	if u.locker == nil {
		return func() {}, nil
	}
	release, err := u.locker.Acquire(ctx, id, u.lockTTL)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Interview is being updated, please retry")
		}
		return nil, apperror.Internal(err)
	}
	if release == nil {
		release = func() {}
	}
	return release, nil
}

// parties loads both participants for notifications. Missing parties are
// logged and returned as nil.
func (u *interviewUsecase) parties(ctx context.Context, candidateID, interviewerID string) (*domain.Candidate, *domain.Interviewer) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		logger.Log.Warn("failed to load candidate for notification", "candidate_id", candidateID, "error", err)
	}
	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		logger.Log.Warn("failed to load interviewer for notification", "interviewer_id", interviewerID, "error", err)
	}
	return candidate, interviewer
}
