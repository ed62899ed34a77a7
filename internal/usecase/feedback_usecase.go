package usecase

import (
	"context"
	"sort"
	"strings"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/audit"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/rating"
)

// Entries shown in the feedback email; only the first digestFull are shown in full.
const (
	digestSize = 3
	digestFull = 2
)

type FeedbackUsecaseDeps struct {
	Candidates   domain.CandidateRepository
	Interviewers domain.InterviewerRepository
	Interviews   domain.InterviewRepository
	Feedback     domain.FeedbackRepository
	Notifier     domain.Notifier
	Audit        *audit.Logger
	// FrontendURL is linked from the feedback email.
	FrontendURL string
}

type feedbackUsecase struct {
	candidates   domain.CandidateRepository
	interviewers domain.InterviewerRepository
	interviews   domain.InterviewRepository
	feedback     domain.FeedbackRepository
	notifier     domain.Notifier
	audit        *audit.Logger
	frontendURL  string
}

func NewFeedbackUsecase(deps FeedbackUsecaseDeps) domain.FeedbackUsecase {
	u := &feedbackUsecase{
		candidates:   deps.Candidates,
		interviewers: deps.Interviewers,
		interviews:   deps.Interviews,
		feedback:     deps.Feedback,
		notifier:     deps.Notifier,
		audit:        deps.Audit,
		frontendURL:  strings.TrimRight(deps.FrontendURL, "/"),
	}
	if u.notifier == nil {
		u.notifier = NewNotifier(nil, nil, nil)
	}
	return u
}

func validateFeedback(feedback map[string]rating.Section) error {
	if len(feedback) == 0 {
		return apperror.BadRequest("Feedback is required")
	}
	if !rating.Valid(feedback) {
		return apperror.BadRequest("Ratings must be between 0 and 5")
	}
	return nil
}

// AddInterviewerFeedback records feedback about the interviewer and completes the interview.
func (u *feedbackUsecase) AddInterviewerFeedback(ctx context.Context, interviewerID, interviewRequestID string, feedback map[string]rating.Section) (*domain.FeedbackEntry, error) {
	if blank(interviewerID, interviewRequestID) {
		return nil, apperror.BadRequest("Interviewer id and interview request id are required")
	}
	if err := validateFeedback(feedback); err != nil {
		return nil, err
	}

	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}

	req, err := u.interviews.GetRequest(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview request not found", "")
	}
	if req == nil || req.InterviewerID != interviewerID {
		return nil, apperror.NotFound("Interview request not found")
	}

	switch req.Status {
	case domain.StatusCompleted:
		return nil, apperror.Conflict("Interview is already completed")
	case domain.StatusApproved, domain.StatusRescheduled:
	default:
		return nil, apperror.Conflict("Feedback can only be given for an approved interview")
	}

	exists, err := u.feedback.Exists(ctx, domain.SubjectInterviewer, interviewerID, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if exists {
		return nil, apperror.Conflict("Feedback already submitted for this interview")
	}

	actor := actorFrom(ctx)
	rec := &domain.FeedbackRecord{
		Subject:           domain.SubjectInterviewer,
		SubjectID:         interviewerID,
		Entry:             newEntry(interviewRequestID, feedback),
		CompleteInterview: true,
		Actor:             actor,
	}
	counters, err := u.feedback.Record(ctx, rec, func(c domain.FeedbackCounters) domain.FeedbackCounters {
		c.AverageRating = rating.RunningMean(c.AverageRating, c.TotalFeedbackCount, rec.Entry.Rating)
		c.CompletedInterviews++
		c.TotalFeedbackCount++
		c.TotalAccepted++
		return c
	})
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "Feedback already submitted for this interview")
	}

	u.audit.Transition(ctx, audit.EventInterviewCompleted, interviewRequestID, actor, string(req.Status), string(domain.StatusCompleted))
	u.audit.Log(ctx, audit.Event{
		Event:              audit.EventFeedbackRecorded,
		InterviewRequestID: interviewRequestID,
		Actor:              actor,
		Details:            map[string]interface{}{"subject": string(domain.SubjectInterviewer), "rating": rec.Entry.Rating},
	})

	u.notifyFeedback(ctx, domain.SubjectInterviewer, interviewer.ID, interviewer.Name, interviewer.Email, counters)
	return &rec.Entry, nil
}

// AddCandidateFeedback records feedback about the candidate.
func (u *feedbackUsecase) AddCandidateFeedback(ctx context.Context, candidateID, interviewRequestID string, feedback map[string]rating.Section) (*domain.FeedbackEntry, error) {
	if blank(candidateID, interviewRequestID) {
		return nil, apperror.BadRequest("Candidate id and interview request id are required")
	}
	if err := validateFeedback(feedback); err != nil {
		return nil, err
	}

	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	scheduled, err := u.interviews.GetScheduled(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	if scheduled == nil || scheduled.CandidateID != candidateID {
		return nil, apperror.NotFound("Interview not found")
	}

	switch scheduled.Status {
	case domain.StatusApproved, domain.StatusRescheduled, domain.StatusCompleted:
	default:
		return nil, apperror.Conflict("Feedback can only be given for an approved interview")
	}

	exists, err := u.feedback.Exists(ctx, domain.SubjectCandidate, candidateID, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if exists {
		return nil, apperror.Conflict("Feedback already submitted for this interview")
	}

	actor := actorFrom(ctx)
	rec := &domain.FeedbackRecord{
		Subject:   domain.SubjectCandidate,
		SubjectID: candidateID,
		Entry:     newEntry(interviewRequestID, feedback),
		Actor:     actor,
	}
	counters, err := u.feedback.Record(ctx, rec, func(c domain.FeedbackCounters) domain.FeedbackCounters {
		c.AverageRating = rating.RunningMean(c.AverageRating, c.TotalFeedbackCount, rec.Entry.Rating)
		c.CompletedInterviews++
		c.TotalFeedbackCount++
		return c
	})
	if err != nil {
		return nil, repoError(err, "Candidate not found", "Feedback already submitted for this interview")
	}

	u.audit.Log(ctx, audit.Event{
		Event:              audit.EventFeedbackRecorded,
		InterviewRequestID: interviewRequestID,
		Actor:              actor,
		Details:            map[string]interface{}{"subject": string(domain.SubjectCandidate), "rating": rec.Entry.Rating},
	})

	u.notifyFeedback(ctx, domain.SubjectCandidate, candidate.ID, candidate.Name, candidate.Email, counters)
	return &rec.Entry, nil
}

func (u *feedbackUsecase) GetCandidateStatistics(ctx context.Context, candidateID string) (*domain.CandidateStatistics, error) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	entries, err := u.feedback.ListBySubject(ctx, domain.SubjectCandidate, candidateID, 0)
	if err != nil {
		return nil, repoError(err, "Candidate not found", "")
	}

	stats := candidate.Statistics
	stats.Feedbacks = entries
	return &stats, nil
}

func (u *feedbackUsecase) GetInterviewerStatistics(ctx context.Context, interviewerID string) (*domain.InterviewerStatistics, error) {
	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}
	entries, err := u.feedback.ListBySubject(ctx, domain.SubjectInterviewer, interviewerID, 0)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}

	stats := interviewer.Statistics
	stats.Feedbacks = entries
	return &stats, nil
}

func newEntry(interviewRequestID string, feedback map[string]rating.Section) domain.FeedbackEntry {
	return domain.FeedbackEntry{
		InterviewRequestID: interviewRequestID,
		FeedbackData:       feedback,
		Rating:             rating.Average(feedback),
	}
}

func (u *feedbackUsecase) notifyFeedback(ctx context.Context, subject domain.FeedbackSubject, userID, name, email string, counters domain.FeedbackCounters) {
	recent, err := u.feedback.ListBySubject(ctx, subject, userID, digestSize)
	if err != nil {
		logger.Log.Warn("failed to load recent feedback for email", "user_id", userID, "error", err)
		return
	}

	u.notifier.Notify(ctx, domain.Notice{
		UserID:   userID,
		Email:    email,
		Subject:  "You received new feedback",
		Template: domain.TemplateFeedbackReceived,
		Data: domain.FeedbackNotice{
			RecipientName: name,
			AverageRating: rating.Round2(counters.AverageRating),
			TotalFeedback: counters.TotalFeedbackCount,
			Entries:       FeedbackDigest(recent),
			ProfileURL:    u.frontendURL + "/" + string(subject) + "s/" + userID + "/statistics",
		},
	})
}

// FeedbackDigest renders the newest entries for the email: the first two in
// full, the third with only its overall rating.
func FeedbackDigest(entries []domain.FeedbackEntry) []domain.FeedbackDigestEntry {
	if len(entries) > digestSize {
		entries = entries[:digestSize]
	}
	out := make([]domain.FeedbackDigestEntry, 0, len(entries))
	for i, e := range entries {
		d := domain.FeedbackDigestEntry{Rating: rating.Round2(e.Rating)}
		if i >= digestFull {
			d.Obscured = true
			out = append(out, d)
			continue
		}
		names := make([]string, 0, len(e.FeedbackData))
		for name := range e.FeedbackData {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := e.FeedbackData[name]
			var r float64
			if s.Rating != nil {
				r = *s.Rating
			}
			d.Sections = append(d.Sections, domain.FeedbackDigestSection{Name: name, Rating: r, Comments: s.Comments})
		}
		out = append(out, d)
	}
	return out
}
