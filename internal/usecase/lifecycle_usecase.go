package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/audit"
	"interview-marketplace-backend/pkg/auth"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/timeslot"

	"github.com/google/uuid"
)

func (u *interviewUsecase) UpdateInterviewRequest(ctx context.Context, interviewRequestID string, status domain.InterviewStatus) (*domain.InterviewRequest, error) {
	if status != domain.StatusApproved && status != domain.StatusCancelled {
		return nil, apperror.BadRequest("Status must be Approved or Cancelled")
	}
	if strings.TrimSpace(interviewRequestID) == "" {
		return nil, apperror.BadRequest("Interview request id is required")
	}

	release, err := u.lock(ctx, interviewRequestID)
	if err != nil {
		return nil, err
	}
	defer release()

	req, err := u.interviews.GetRequest(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview request not found", "")
	}
	if req == nil {
		return nil, apperror.NotFound("Interview request not found")
	}

	actor := actorFrom(ctx)
	if userID, privileged := caller(ctx); !privileged && userID != req.InterviewerID {
		u.audit.Rejected(ctx, req.ID, actor, string(req.Status), string(status), "caller is not the interviewer")
		return nil, apperror.Forbidden("Only the interviewer of this interview can approve or cancel it")
	}
	if !domain.CanTransition(req.Status, status) {
		u.audit.Rejected(ctx, req.ID, actor, string(req.Status), string(status), "transition not allowed")
		return nil, apperror.Conflict(fmt.Sprintf("Interview is %s and cannot be %s", req.Status, strings.ToLower(string(status))))
	}

	change := domain.StatusChange{
		InterviewRequestID: req.ID,
		From:               []domain.InterviewStatus{req.Status},
		To:                 status,
		Actor:              actor,
	}
	// Only requests still waiting for a decision count as pending.
	if req.Status == domain.StatusRequested {
		change.PendingDelta = -1
	}

	var link string
	event := audit.EventInterviewCancelled
	if status == domain.StatusApproved {
		link = u.links.ForRequest(req.ID)
		change.CandidateMeetingLink = &link
		change.InterviewerMeetingLink = &link
		event = audit.EventInterviewApproved
	} else {
		change.ReleaseSlot = true
	}

	if _, err := u.apply(ctx, change, req.Status); err != nil {
		return nil, err
	}
	u.audit.Transition(ctx, event, req.ID, actor, string(req.Status), string(status))

	updated := *req
	updated.Status = status
	if link != "" {
		updated.MeetingLink = link
	}

	template, subject := domain.TemplateInterviewCancelled, "Interview cancelled"
	if status == domain.StatusApproved {
		template, subject = domain.TemplateInterviewApproved, "Interview confirmed"
	}
	candidate, interviewer := u.parties(ctx, req.CandidateID, req.InterviewerID)
	u.notifyBoth(ctx, candidate, interviewer, &updated, template, subject, link, link)

	return &updated, nil
}

func (u *interviewUsecase) RequestReschedule(ctx context.Context, in domain.RescheduleRequest) (*domain.InterviewRequest, error) {
	in.CandidateID = strings.TrimSpace(in.CandidateID)
	in.From = strings.TrimSpace(in.From)
	in.To = strings.TrimSpace(in.To)

	if blank(in.InterviewRequestID, in.CandidateID, in.Date, in.From, in.To) {
		return nil, apperror.BadRequest("interview id, candidate_id, date, from and to are required")
	}
	if _, err := uuid.Parse(in.CandidateID); err != nil {
		return nil, apperror.BadRequest("Invalid candidate id")
	}
	day, err := timeslot.ParseRescheduleDate(in.Date, u.loc)
	if err != nil {
		return nil, apperror.BadRequest("Invalid date, expected DD/MM/YYYY")
	}
	if !timeslot.IsTwelveHourClock(in.From) || !timeslot.IsTwelveHourClock(in.To) {
		return nil, apperror.BadRequest("Invalid time, expected a 12-hour clock like 10:00 AM")
	}
	requestedBy := in.RequestedBy
	if requestedBy == "" {
		requestedBy = domain.RoleCandidate
	}
	if requestedBy != domain.RoleCandidate && requestedBy != domain.RoleInterviewer {
		return nil, apperror.BadRequest("Reschedule can be requested by the candidate or the interviewer only")
	}
	start, err := timeslot.Instant(day, in.From)
	if err != nil {
		return nil, apperror.BadRequest("Invalid start time")
	}

	release, err := u.lock(ctx, in.InterviewRequestID)
	if err != nil {
		return nil, err
	}
	defer release()

	req, err := u.interviews.GetRequest(ctx, in.InterviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	if req == nil || req.CandidateID != in.CandidateID {
		return nil, apperror.NotFound("Interview not found")
	}

	actor := actorFrom(ctx)
	if userID, privileged := caller(ctx); !privileged && sideOf(req, userID) != requestedBy {
		u.audit.Rejected(ctx, req.ID, actor, string(req.Status), string(domain.StatusRescheduleRequested), "caller is not the requesting party")
		return nil, apperror.Forbidden("You can only reschedule your own interviews")
	}
	if !domain.CanTransition(req.Status, domain.StatusRescheduleRequested) {
		u.audit.Rejected(ctx, req.ID, actor, string(req.Status), string(domain.StatusRescheduleRequested), "transition not allowed")
		return nil, apperror.Conflict(fmt.Sprintf("Interview is %s and cannot be rescheduled", req.Status))
	}

	schedule := &domain.ScheduleChange{
		Date:     timeslot.DisplayDate(day),
		Time:     timeslot.TimeRange(in.From, in.To),
		From:     in.From,
		To:       in.To,
		ISODate:  start,
		SlotDate: timeslot.SlotDate(day),
	}

	if u.conflictPolicy == ConflictPolicyReject {
		current := timeslot.Slot{Date: timeslot.SlotDate(req.ISODate.In(u.loc)), From: req.From, To: req.To}
		proposed := timeslot.Slot{Date: schedule.SlotDate, From: in.From, To: in.To}
		if !timeslot.SameSlot(current, proposed) {
			taken, err := u.interviews.HasActiveBooking(ctx, req.InterviewerID, domain.BookedSlot{Date: proposed.Date, From: proposed.From, To: proposed.To})
			if err != nil {
				return nil, repoError(err, "Interview not found", "")
			}
			if taken {
				return nil, apperror.Conflict("This slot is already booked")
			}
		}
	}

	approved := false
	change := domain.StatusChange{
		InterviewRequestID: req.ID,
		CandidateID:        in.CandidateID,
		From:               []domain.InterviewStatus{req.Status},
		To:                 domain.StatusRescheduleRequested,
		RescheduleApproved: &approved,
		Schedule:           schedule,
		Actor:              actor,
		Note:               "requested by " + requestedBy,
	}
	change.RescheduleRequestedBy = &requestedBy
	if req.Status == domain.StatusRequested {
		change.PendingDelta = -1
	}
	if _, err := u.apply(ctx, change, req.Status); err != nil {
		return nil, err
	}
	u.audit.Transition(ctx, audit.EventRescheduleRequested, req.ID, actor, string(req.Status), string(domain.StatusRescheduleRequested))

	updated := *req
	updated.Status = domain.StatusRescheduleRequested
	updated.RescheduleApproved = false
	updated.RescheduleRequestedBy = requestedBy
	updated.Date = schedule.Date
	updated.Time = schedule.Time
	updated.From = schedule.From
	updated.To = schedule.To
	updated.ISODate = schedule.ISODate

	u.notifyRescheduleRequest(ctx, &updated, requestedBy)
	return &updated, nil
}

func (u *interviewUsecase) ApproveReschedule(ctx context.Context, interviewRequestID, candidateID string) (*domain.InterviewRequest, error) {
	if blank(interviewRequestID, candidateID) {
		return nil, apperror.BadRequest("Interview id and candidate id are required")
	}

	release, err := u.lock(ctx, interviewRequestID)
	if err != nil {
		return nil, err
	}
	defer release()

	req, err := u.interviews.GetRequest(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	if req == nil || req.CandidateID != candidateID {
		return nil, apperror.NotFound("Interview not found")
	}
	if err := u.authorizeDecision(ctx, req); err != nil {
		return nil, err
	}

	candidate, interviewer := u.parties(ctx, req.CandidateID, req.InterviewerID)
	candidateName := req.CandidateName
	interviewerName := "Interviewer"
	if interviewer != nil {
		interviewerName = interviewer.Name
	}
	candidateLink := u.links.ForParty(req.ID, candidateName, domain.RoleCandidate)
	interviewerLink := u.links.ForParty(req.ID, interviewerName, domain.RoleInterviewer)

	actor := actorFrom(ctx)
	approved := true
	change := domain.StatusChange{
		InterviewRequestID:     req.ID,
		CandidateID:            candidateID,
		From:                   []domain.InterviewStatus{domain.StatusRescheduleRequested},
		To:                     domain.StatusRescheduled,
		RescheduleApproved:     &approved,
		CandidateMeetingLink:   &candidateLink,
		InterviewerMeetingLink: &interviewerLink,
		Actor:                  actor,
	}
	if _, err := u.apply(ctx, change, req.Status); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			return nil, apperror.Conflict("Reschedule already approved or not requested")
		}
		return nil, err
	}
	u.audit.Transition(ctx, audit.EventRescheduleApproved, req.ID, actor, string(req.Status), string(domain.StatusRescheduled))

	updated := *req
	updated.Status = domain.StatusRescheduled
	updated.RescheduleApproved = true
	updated.MeetingLink = interviewerLink

	u.notifyBoth(ctx, candidate, interviewer, &updated, domain.TemplateRescheduleApproved, "Interview rescheduled", candidateLink, interviewerLink)
	return &updated, nil
}

func (u *interviewUsecase) RejectReschedule(ctx context.Context, interviewRequestID, candidateID string) (*domain.InterviewRequest, error) {
	if blank(interviewRequestID, candidateID) {
		return nil, apperror.BadRequest("Interview id and candidate id are required")
	}

	release, err := u.lock(ctx, interviewRequestID)
	if err != nil {
		return nil, err
	}
	defer release()

	req, err := u.interviews.GetRequest(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	if req == nil || req.CandidateID != candidateID {
		return nil, apperror.NotFound("Interview not found")
	}
	if err := u.authorizeDecision(ctx, req); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	change := domain.StatusChange{
		InterviewRequestID: req.ID,
		CandidateID:        candidateID,
		From:               []domain.InterviewStatus{domain.StatusRescheduleRequested},
		To:                 domain.StatusCancelled,
		ReleaseSlot:        true,
		Actor:              actor,
		Note:               "reschedule rejected",
	}
	if _, err := u.apply(ctx, change, req.Status); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			return nil, apperror.Conflict("No pending reschedule request for this interview")
		}
		return nil, err
	}
	u.audit.Transition(ctx, audit.EventRescheduleRejected, req.ID, actor, string(req.Status), string(domain.StatusCancelled))

	updated := *req
	updated.Status = domain.StatusCancelled

	candidate, interviewer := u.parties(ctx, req.CandidateID, req.InterviewerID)
	u.notifyBoth(ctx, candidate, interviewer, &updated, domain.TemplateRescheduleRejected, "Reschedule rejected", "", "")
	return &updated, nil
}

func (u *interviewUsecase) DecideRescheduleByLink(ctx context.Context, interviewRequestID, action, token string) (*domain.InterviewRequest, error) {
	if u.actionTokens == nil || u.usedTokens == nil {
		return nil, apperror.NotFound("Email actions are not enabled")
	}
	if action != domain.RescheduleActionApprove && action != domain.RescheduleActionReject {
		return nil, apperror.BadRequest("Unknown reschedule action")
	}

	claims, err := u.actionTokens.Parse(token)
	if err != nil || claims.InterviewRequestID != interviewRequestID || claims.Action != action {
		return nil, apperror.Unauthorized("This link is invalid or has expired")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < time.Second {
		ttl = time.Second
	}
	fresh, err := u.usedTokens.Consume(ctx, claims.ID, ttl)
	if err != nil {
		logger.Log.Error("failed to record used action token", "interview_request_id", interviewRequestID, "error", err)
		return nil, apperror.Internal(err)
	}
	if !fresh {
		return nil, apperror.Conflict("This link has already been used")
	}

	// the link stands in for the recipient's session
	ctx = context.WithValue(ctx, domain.KeyUserID, claims.Subject)
	ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Party)
	if action == domain.RescheduleActionApprove {
		return u.ApproveReschedule(ctx, interviewRequestID, claims.CandidateID)
	}
	return u.RejectReschedule(ctx, interviewRequestID, claims.CandidateID)
}

func (u *interviewUsecase) GetHistory(ctx context.Context, interviewRequestID string) ([]domain.Transition, error) {
	req, err := u.interviews.GetRequest(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	if req == nil {
		return nil, apperror.NotFound("Interview not found")
	}
	history, err := u.interviews.ListTransitions(ctx, interviewRequestID)
	if err != nil {
		return nil, repoError(err, "Interview not found", "")
	}
	return history, nil
}

// authorizeDecision lets only the party who did not propose the new time
// answer a reschedule request.
func (u *interviewUsecase) authorizeDecision(ctx context.Context, req *domain.InterviewRequest) error {
	userID, privileged := caller(ctx)
	if privileged {
		return nil
	}
	side := sideOf(req, userID)
	if side == "" {
		return apperror.Forbidden("You are not a party to this interview")
	}
	if side == req.RescheduleRequestedBy {
		u.audit.Rejected(ctx, req.ID, userID, string(req.Status), "", "requester answered own reschedule")
		return apperror.Forbidden("Only the other party can answer this reschedule request")
	}
	return nil
}

// apply runs the mirrored update and turns the repository outcome into an
// AppError. A missing mirror is NotFound, a mirror in another state is Conflict.
func (u *interviewUsecase) apply(ctx context.Context, change domain.StatusChange, observed domain.InterviewStatus) (domain.UpdateResult, error) {
	res, err := u.interviews.ApplyTransition(ctx, change)
	if err == nil {
		return res, nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return res, apperror.NotFound("Interview not found")
	case errors.Is(err, domain.ErrConflict):
		if res.Modified() {
			// one mirror matched the expected state and the other did not
			u.audit.Log(ctx, audit.Event{
				Event:              audit.EventPartialUpdate,
				InterviewRequestID: change.InterviewRequestID,
				Actor:              change.Actor,
				FromStatus:         string(observed),
				ToStatus:           string(change.To),
				Details: map[string]interface{}{
					"interviewer_modified": res.InterviewerModified,
					"candidate_modified":   res.CandidateModified,
				},
			})
		} else {
			u.audit.Rejected(ctx, change.InterviewRequestID, change.Actor, string(observed), string(change.To), "status changed concurrently")
		}
		return res, apperror.Conflict("Interview was modified by someone else, please reload")
	default:
		logger.Log.Error("failed to apply interview transition", "interview_request_id", change.InterviewRequestID, "error", err)
		return res, apperror.Internal(err)
	}
}

func (u *interviewUsecase) notifyBoth(ctx context.Context, candidate *domain.Candidate, interviewer *domain.Interviewer, req *domain.InterviewRequest, template, subject, candidateLink, interviewerLink string) {
	var notices []domain.Notice
	interviewerName := "your interviewer"
	if interviewer != nil {
		interviewerName = interviewer.Name
	}
	if candidate != nil {
		notices = append(notices, domain.Notice{
			UserID:   candidate.ID,
			Email:    candidate.Email,
			Subject:  subject,
			Template: template,
			Data: domain.InterviewNotice{
				RecipientName:   candidate.Name,
				CounterpartName: interviewerName,
				Position:        req.Position,
				Date:            req.Date,
				Time:            req.Time,
				Status:          req.Status,
				MeetingLink:     candidateLink,
			},
		})
	}
	if interviewer != nil {
		notices = append(notices, domain.Notice{
			UserID:   interviewer.ID,
			Email:    interviewer.Email,
			Subject:  subject,
			Template: template,
			Data: domain.InterviewNotice{
				RecipientName:   interviewer.Name,
				CounterpartName: req.CandidateName,
				Position:        req.Position,
				Date:            req.Date,
				Time:            req.Time,
				Status:          req.Status,
				MeetingLink:     interviewerLink,
			},
		})
	}
	u.notifier.Notify(ctx, notices...)
}

// notifyRescheduleRequest asks the party who did not request the change to approve or reject it.
func (u *interviewUsecase) notifyRescheduleRequest(ctx context.Context, req *domain.InterviewRequest, requestedBy string) {
	candidate, interviewer := u.parties(ctx, req.CandidateID, req.InterviewerID)

	data := domain.InterviewNotice{
		Position:    req.Position,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		RequestedBy: requestedBy,
	}

	var notice domain.Notice
	if requestedBy == domain.RoleCandidate {
		if interviewer == nil {
			return
		}
		data.RecipientName, data.CounterpartName = interviewer.Name, req.CandidateName
		notice = domain.Notice{UserID: interviewer.ID, Email: interviewer.Email}
	} else {
		if candidate == nil {
			return
		}
		data.RecipientName = candidate.Name
		data.CounterpartName = "Your interviewer"
		if interviewer != nil {
			data.CounterpartName = interviewer.Name
		}
		notice = domain.Notice{UserID: candidate.ID, Email: candidate.Email}
	}
	party := domain.RoleInterviewer
	if requestedBy == domain.RoleInterviewer {
		party = domain.RoleCandidate
	}
	data.ApproveURL = u.actionURL(req, domain.RescheduleActionApprove, notice.UserID, party)
	data.RejectURL = u.actionURL(req, domain.RescheduleActionReject, notice.UserID, party)
	if data.ApproveURL == "" || data.RejectURL == "" {
		data.ApproveURL, data.RejectURL = "", ""
	}

	notice.Subject = "Reschedule requested"
	notice.Template = domain.TemplateRescheduleRequested
	notice.Data = data
	u.notifier.Notify(ctx, notice)
}

// actionURL returns a signed single-use link for recipientID, or "" when
// links are disabled.
func (u *interviewUsecase) actionURL(req *domain.InterviewRequest, action, recipientID, party string) string {
	if u.actionTokens == nil || u.usedTokens == nil {
		return ""
	}
	claims := auth.ActionClaims{
		InterviewRequestID: req.ID,
		CandidateID:        req.CandidateID,
		Action:             action,
		Party:              party,
	}
	claims.Subject = recipientID
	token, err := u.actionTokens.Issue(claims)
	if err != nil {
		logger.Log.Error("failed to sign reschedule link", "interview_request_id", req.ID, "error", err)
		return ""
	}
	q := url.Values{}
	q.Set("token", token)
	return fmt.Sprintf("%s/v1/interviews/%s/reschedule/%s?%s", u.appBaseURL, url.PathEscape(req.ID), action, q.Encode())
}
