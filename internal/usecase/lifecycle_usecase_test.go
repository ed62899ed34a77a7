package usecase_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/internal/usecase"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/auth"
)

const candidateUUID = "4f1c2a6e-8d3b-4c59-9a7e-2b6d1f0e3c8a"

func requestIn(status domain.InterviewStatus) *domain.InterviewRequest {
	return &domain.InterviewRequest{
		ID:            "R1",
		InterviewerID: "I1",
		CandidateID:   candidateUUID,
		CandidateName: "Ada Lovelace",
		Position:      "Backend Engineer",
		Date:          "Monday, June 10, 2030",
		Time:          "10:00 AM - 11:00 AM",
		From:          "10:00 AM",
		To:            "11:00 AM",
		ISODate:       time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

var candidateUUIDParty = &domain.Candidate{ID: candidateUUID, Name: "Ada Lovelace", Email: "ada@example.com"}

func (f *interviewFixture) expectParties() {
	f.candidates.On("GetByID", mock.Anything, candidateUUID).Return(candidateUUIDParty, nil)
	f.interviewers.On("GetByID", mock.Anything, "I1").Return(interviewerI1, nil)
}

func TestUpdateInterviewRequest_Approve(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusRequested), nil)
	f.expectParties()

	var change domain.StatusChange
	f.interviews.On("ApplyTransition", ctx, mock.Anything).
		Run(func(args mock.Arguments) { change = args.Get(1).(domain.StatusChange) }).
		Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}, nil)

	out, err := uc.UpdateInterviewRequest(ctx, "R1", domain.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, out.Status)
	assert.NotEmpty(t, out.MeetingLink)
	assert.Equal(t, []domain.InterviewStatus{domain.StatusRequested}, change.From)
	assert.Equal(t, domain.StatusApproved, change.To)
	assert.Equal(t, -1, change.PendingDelta)
	assert.False(t, change.ReleaseSlot)
	require.NotNil(t, change.CandidateMeetingLink)
	assert.Equal(t, *change.CandidateMeetingLink, *change.InterviewerMeetingLink)

	notices := f.notifier.sent()
	require.Len(t, notices, 2)
	for _, n := range notices {
		assert.Equal(t, domain.TemplateInterviewApproved, n.Template)
		assert.Equal(t, out.MeetingLink, n.Data.(domain.InterviewNotice).MeetingLink)
	}
}

func TestUpdateInterviewRequest_CancelApproved(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusApproved), nil)
	f.expectParties()
	f.interviews.On("ApplyTransition", ctx, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.To == domain.StatusCancelled && c.ReleaseSlot && c.PendingDelta == 0 && c.CandidateMeetingLink == nil
	})).Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}, nil)

	out, err := uc.UpdateInterviewRequest(ctx, "R1", domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, out.Status)
	f.interviews.AssertExpectations(t)
}

func TestUpdateInterviewRequest_ApproveCancelledIsConflict(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusCancelled), nil)

	_, err := uc.UpdateInterviewRequest(ctx, "R1", domain.StatusApproved)
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent())
}

func TestUpdateInterviewRequest_Errors(t *testing.T) {
	t.Run("unsupported status", func(t *testing.T) {
		f := newInterviewFixture()
		_, err := f.usecase("", nil).UpdateInterviewRequest(context.Background(), "R1", domain.StatusCompleted)
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})

	t.Run("missing request", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R9").Return(nil, nil)
		_, err := f.usecase("", nil).UpdateInterviewRequest(context.Background(), "R9", domain.StatusApproved)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("candidate mirror missing", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRequested), nil)
		f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).Return(domain.UpdateResult{InterviewerMatched: 1}, domain.ErrNotFound)
		_, err := f.usecase("", nil).UpdateInterviewRequest(context.Background(), "R1", domain.StatusApproved)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRequested), nil)
		f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).
			Return(domain.UpdateResult{InterviewerMatched: 1, CandidateMatched: 1}, domain.ErrConflict)
		_, err := f.usecase("", nil).UpdateInterviewRequest(context.Background(), "R1", domain.StatusApproved)
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		assert.Empty(t, f.notifier.sent())
	})
}

func TestUpdateInterviewRequest_Locking(t *testing.T) {
	t.Run("held lock is a conflict", func(t *testing.T) {
		f := newInterviewFixture()
		locker := new(MockLocker)
		locker.On("Acquire", mock.Anything, "R1", 10*time.Second).Return(nil, domain.ErrConflict)

		_, err := f.usecase("", locker).UpdateInterviewRequest(context.Background(), "R1", domain.StatusApproved)
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "GetRequest", mock.Anything, mock.Anything)
	})

	t.Run("lock is released", func(t *testing.T) {
		f := newInterviewFixture()
		released := false
		locker := new(MockLocker)
		locker.On("Acquire", mock.Anything, "R1", mock.Anything).Return(func() { released = true }, nil)
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusCompleted), nil)

		_, err := f.usecase("", locker).UpdateInterviewRequest(context.Background(), "R1", domain.StatusCancelled)
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		assert.True(t, released)
	})
}

func validReschedule() domain.RescheduleRequest {
	return domain.RescheduleRequest{
		InterviewRequestID: "R1",
		CandidateID:        candidateUUID,
		Date:               "15/07/2030",
		From:               "2:00 PM",
		To:                 "3:00 PM",
	}
}

func TestRequestReschedule_ValidationBeforePersistence(t *testing.T) {
	cases := map[string]func(r *domain.RescheduleRequest){
		"hour out of range": func(r *domain.RescheduleRequest) { r.From = "25:00 AM" },
		"bad candidate id":  func(r *domain.RescheduleRequest) { r.CandidateID = "C1" },
		"month first date":  func(r *domain.RescheduleRequest) { r.Date = "2030-07-15" },
		"day out of range":  func(r *domain.RescheduleRequest) { r.Date = "32/07/2030" },
		"missing to":        func(r *domain.RescheduleRequest) { r.To = "" },
		"unknown requester": func(r *domain.RescheduleRequest) { r.RequestedBy = "client" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newInterviewFixture()
			locker := new(MockLocker)
			in := validReschedule()
			mutate(&in)

			_, err := f.usecase("", locker).RequestReschedule(context.Background(), in)
			assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
			locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
			f.interviews.AssertNotCalled(t, "GetRequest", mock.Anything, mock.Anything)
			f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
		})
	}
}

func TestRequestReschedule_ByCandidate(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusApproved), nil)
	f.expectParties()

	var change domain.StatusChange
	f.interviews.On("ApplyTransition", ctx, mock.Anything).
		Run(func(args mock.Arguments) { change = args.Get(1).(domain.StatusChange) }).
		Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}, nil)

	out, err := uc.RequestReschedule(ctx, validReschedule())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRescheduleRequested, out.Status)
	assert.False(t, out.RescheduleApproved)
	assert.Equal(t, "Monday, July 15, 2030", out.Date)
	assert.Equal(t, "2:00 PM - 3:00 PM", out.Time)
	assert.Equal(t, time.Date(2030, 7, 15, 14, 0, 0, 0, time.UTC), out.ISODate)

	assert.Equal(t, candidateUUID, change.CandidateID)
	require.NotNil(t, change.Schedule)
	assert.Equal(t, "07/15/2030", change.Schedule.SlotDate)
	require.NotNil(t, change.RescheduleApproved)
	assert.False(t, *change.RescheduleApproved)

	notices := f.notifier.sent()
	require.Len(t, notices, 1)
	assert.Equal(t, "I1", notices[0].UserID)
	data := notices[0].Data.(domain.InterviewNotice)
	assert.True(t, strings.HasPrefix(data.ApproveURL, "https://api.example.com/v1/interviews/R1/reschedule/approve?"))
	assert.Contains(t, data.RejectURL, "/reschedule/reject?token=")

	link, err := url.Parse(data.ApproveURL)
	require.NoError(t, err)
	claims, err := f.tokens.Parse(link.Query().Get("token"))
	require.NoError(t, err)
	assert.Equal(t, "I1", claims.Subject)
	assert.Equal(t, domain.RoleInterviewer, claims.Party)
	assert.Equal(t, domain.RescheduleActionApprove, claims.Action)
	assert.Equal(t, candidateUUID, claims.CandidateID)
}

func TestRequestReschedule_ByInterviewerNotifiesCandidate(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusRequested), nil)
	f.expectParties()
	f.interviews.On("ApplyTransition", ctx, mock.Anything).Return(domain.UpdateResult{InterviewerModified: 1, CandidateModified: 1}, nil)

	in := validReschedule()
	in.RequestedBy = domain.RoleInterviewer
	_, err := uc.RequestReschedule(ctx, in)
	require.NoError(t, err)

	notices := f.notifier.sent()
	require.Len(t, notices, 1)
	assert.Equal(t, candidateUUID, notices[0].UserID)
}

func TestRequestReschedule_StateErrors(t *testing.T) {
	t.Run("other candidate", func(t *testing.T) {
		f := newInterviewFixture()
		req := requestIn(domain.StatusApproved)
		req.CandidateID = "someone-else"
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(req, nil)

		_, err := f.usecase("", nil).RequestReschedule(context.Background(), validReschedule())
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("completed interview", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusCompleted), nil)

		_, err := f.usecase("", nil).RequestReschedule(context.Background(), validReschedule())
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	t.Run("slot taken under reject policy", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusApproved), nil)
		f.interviews.On("HasActiveBooking", mock.Anything, "I1", domain.BookedSlot{Date: "07/15/2030", From: "2:00 PM", To: "3:00 PM"}).Return(true, nil)

		_, err := f.usecase(usecase.ConflictPolicyReject, nil).RequestReschedule(context.Background(), validReschedule())
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	t.Run("same slot skips the booking check", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusApproved), nil)
		f.expectParties()
		f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).Return(domain.UpdateResult{InterviewerModified: 1, CandidateModified: 1}, nil)

		in := validReschedule()
		in.Date, in.From, in.To = "10/06/2030", "10:00 AM", "11:00 AM"
		_, err := f.usecase(usecase.ConflictPolicyReject, nil).RequestReschedule(context.Background(), in)
		require.NoError(t, err)
		f.interviews.AssertNotCalled(t, "HasActiveBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApproveReschedule(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusRescheduleRequested), nil)
	f.expectParties()

	var change domain.StatusChange
	f.interviews.On("ApplyTransition", ctx, mock.Anything).
		Run(func(args mock.Arguments) { change = args.Get(1).(domain.StatusChange) }).
		Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}, nil)

	out, err := uc.ApproveReschedule(ctx, "R1", candidateUUID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRescheduled, out.Status)
	assert.True(t, out.RescheduleApproved)
	assert.Equal(t, []domain.InterviewStatus{domain.StatusRescheduleRequested}, change.From)
	require.NotNil(t, change.CandidateMeetingLink)
	require.NotNil(t, change.InterviewerMeetingLink)
	assert.NotEqual(t, *change.CandidateMeetingLink, *change.InterviewerMeetingLink)
	assert.Contains(t, *change.CandidateMeetingLink, "role=candidate")

	notices := f.notifier.sent()
	require.Len(t, notices, 2)
	assert.Equal(t, *change.CandidateMeetingLink, notices[0].Data.(domain.InterviewNotice).MeetingLink)
	assert.Equal(t, *change.InterviewerMeetingLink, notices[1].Data.(domain.InterviewNotice).MeetingLink)
}

func TestApproveReschedule_NothingModified(t *testing.T) {
	f := newInterviewFixture()
	f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRescheduled), nil)
	f.expectParties()
	f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).
		Return(domain.UpdateResult{InterviewerMatched: 1, CandidateMatched: 1}, domain.ErrConflict)

	_, err := f.usecase("", nil).ApproveReschedule(context.Background(), "R1", candidateUUID)
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	assert.Equal(t, "Reschedule already approved or not requested", err.Error())
	assert.Empty(t, f.notifier.sent())
}

func TestApproveReschedule_PartialUpdate(t *testing.T) {
	f := newInterviewFixture()
	f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRescheduleRequested), nil)
	f.expectParties()
	f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).
		Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1}, domain.ErrConflict)

	_, err := f.usecase("", nil).ApproveReschedule(context.Background(), "R1", candidateUUID)
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
}

func TestRejectReschedule(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()
	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusRescheduleRequested), nil)
	f.expectParties()
	f.interviews.On("ApplyTransition", ctx, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.To == domain.StatusCancelled && c.ReleaseSlot && c.CandidateID == candidateUUID
	})).Return(domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}, nil)

	out, err := f.usecase("", nil).RejectReschedule(ctx, "R1", candidateUUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, out.Status)

	notices := f.notifier.sent()
	require.Len(t, notices, 2)
	assert.Equal(t, domain.TemplateRescheduleRejected, notices[0].Template)
}

func TestRejectReschedule_NoPendingRequest(t *testing.T) {
	f := newInterviewFixture()
	f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusApproved), nil)
	f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).
		Return(domain.UpdateResult{InterviewerMatched: 1, CandidateMatched: 1}, domain.ErrConflict)

	_, err := f.usecase("", nil).RejectReschedule(context.Background(), "R1", candidateUUID)
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	assert.Equal(t, "No pending reschedule request for this interview", err.Error())
}

func TestGetHistory(t *testing.T) {
	f := newInterviewFixture()
	ctx := context.Background()
	f.interviews.On("GetRequest", ctx, "R1").Return(requestIn(domain.StatusApproved), nil)
	f.interviews.On("ListTransitions", ctx, "R1").Return([]domain.Transition{
		{InterviewRequestID: "R1", ToStatus: domain.StatusRequested},
		{InterviewRequestID: "R1", FromStatus: domain.StatusRequested, ToStatus: domain.StatusApproved},
	}, nil)
	f.interviews.On("GetRequest", ctx, "R9").Return(nil, nil)

	history, err := f.usecase("", nil).GetHistory(ctx, "R1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	_, err = f.usecase("", nil).GetHistory(ctx, "R9")
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}

func asUser(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, id)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func pendingReschedule(requestedBy string) *domain.InterviewRequest {
	req := requestIn(domain.StatusRescheduleRequested)
	req.RescheduleRequestedBy = requestedBy
	return req
}

var bothModified = domain.UpdateResult{InterviewerMatched: 1, InterviewerModified: 1, CandidateMatched: 1, CandidateModified: 1}

func TestRequestReschedule_PendingCountAndRequester(t *testing.T) {
	cases := map[domain.InterviewStatus]int{
		domain.StatusRequested:   -1,
		domain.StatusApproved:    0,
		domain.StatusRescheduled: 0,
	}
	for from, delta := range cases {
		t.Run(string(from), func(t *testing.T) {
			f := newInterviewFixture()
			f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(from), nil)
			f.expectParties()

			var change domain.StatusChange
			f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { change = args.Get(1).(domain.StatusChange) }).
				Return(bothModified, nil)

			in := validReschedule()
			in.RequestedBy = domain.RoleInterviewer
			out, err := f.usecase("", nil).RequestReschedule(asUser("I1", domain.RoleInterviewer), in)
			require.NoError(t, err)

			assert.Equal(t, delta, change.PendingDelta)
			require.NotNil(t, change.RescheduleRequestedBy)
			assert.Equal(t, domain.RoleInterviewer, *change.RescheduleRequestedBy)
			assert.Equal(t, domain.RoleInterviewer, out.RescheduleRequestedBy)
		})
	}
}

func TestRequestReschedule_OnlyParties(t *testing.T) {
	cases := map[string]struct {
		ctx         context.Context
		requestedBy string
	}{
		"another candidate":               {asUser("C9", domain.RoleCandidate), domain.RoleCandidate},
		"another interviewer":             {asUser("I2", domain.RoleInterviewer), domain.RoleInterviewer},
		"interviewer posing as candidate": {asUser("I1", domain.RoleInterviewer), domain.RoleCandidate},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newInterviewFixture()
			f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusApproved), nil)

			in := validReschedule()
			in.RequestedBy = tc.requestedBy
			_, err := f.usecase("", nil).RequestReschedule(tc.ctx, in)
			assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
			f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
			assert.Empty(t, f.notifier.sent())
		})
	}
}

func TestUpdateInterviewRequest_OnlyOwningInterviewer(t *testing.T) {
	t.Run("other interviewer", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRequested), nil)

		_, err := f.usecase("", nil).UpdateInterviewRequest(asUser("I2", domain.RoleInterviewer), "R1", domain.StatusCancelled)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	for _, who := range []context.Context{asUser("I1", domain.RoleInterviewer), asUser("A1", domain.RoleAdmin)} {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(requestIn(domain.StatusRequested), nil)
		f.expectParties()
		f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).Return(bothModified, nil)

		out, err := f.usecase("", nil).UpdateInterviewRequest(who, "R1", domain.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, out.Status)
	}
}

func TestRescheduleDecision_RequesterCannotAnswer(t *testing.T) {
	t.Run("candidate approves own request", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleCandidate), nil)

		_, err := f.usecase("", nil).ApproveReschedule(asUser(candidateUUID, domain.RoleCandidate), "R1", candidateUUID)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	t.Run("interviewer rejects own request", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleInterviewer), nil)

		_, err := f.usecase("", nil).RejectReschedule(asUser("I1", domain.RoleInterviewer), "R1", candidateUUID)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	t.Run("stranger", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleCandidate), nil)

		_, err := f.usecase("", nil).ApproveReschedule(asUser("I2", domain.RoleInterviewer), "R1", candidateUUID)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})

	t.Run("counterpart approves", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleCandidate), nil)
		f.expectParties()
		f.interviews.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
			return c.Actor == "I1" && c.To == domain.StatusRescheduled
		})).Return(bothModified, nil)

		out, err := f.usecase("", nil).ApproveReschedule(asUser("I1", domain.RoleInterviewer), "R1", candidateUUID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRescheduled, out.Status)
	})

	t.Run("admin rejects", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleCandidate), nil)
		f.expectParties()
		f.interviews.On("ApplyTransition", mock.Anything, mock.Anything).Return(bothModified, nil)

		_, err := f.usecase("", nil).RejectReschedule(asUser("A1", domain.RoleAdmin), "R1", candidateUUID)
		require.NoError(t, err)
	})
}

func linkToken(t *testing.T, tokens *auth.ActionTokens, action string) string {
	t.Helper()
	claims := auth.ActionClaims{
		InterviewRequestID: "R1",
		CandidateID:        candidateUUID,
		Action:             action,
		Party:              domain.RoleInterviewer,
	}
	claims.Subject = "I1"
	token, err := tokens.Issue(claims)
	require.NoError(t, err)
	return token
}

func TestDecideRescheduleByLink(t *testing.T) {
	t.Run("approve acts as the recipient", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleCandidate), nil)
		f.expectParties()
		f.usedTokens.On("Consume", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, nil).Once()
		f.interviews.On("ApplyTransition", mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
			return c.Actor == "I1" && c.CandidateID == candidateUUID
		})).Return(bothModified, nil)

		out, err := f.usecase("", nil).DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionApprove, linkToken(t, f.tokens, domain.RescheduleActionApprove))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRescheduled, out.Status)
		f.usedTokens.AssertExpectations(t)
	})

	t.Run("used link", func(t *testing.T) {
		f := newInterviewFixture()
		f.usedTokens.On("Consume", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		_, err := f.usecase("", nil).DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionReject, linkToken(t, f.tokens, domain.RescheduleActionReject))
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "GetRequest", mock.Anything, mock.Anything)
	})

	t.Run("requester link cannot answer", func(t *testing.T) {
		f := newInterviewFixture()
		f.interviews.On("GetRequest", mock.Anything, "R1").Return(pendingReschedule(domain.RoleInterviewer), nil)
		f.usedTokens.On("Consume", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

		_, err := f.usecase("", nil).DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionApprove, linkToken(t, f.tokens, domain.RescheduleActionApprove))
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
		f.interviews.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
	})

	t.Run("link for another action or interview", func(t *testing.T) {
		f := newInterviewFixture()
		uc := f.usecase("", nil)
		approve := linkToken(t, f.tokens, domain.RescheduleActionApprove)

		_, err := uc.DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionReject, approve)
		assert.Equal(t, http.StatusUnauthorized, apperror.CodeOf(err))
		_, err = uc.DecideRescheduleByLink(context.Background(), "R2", domain.RescheduleActionApprove, approve)
		assert.Equal(t, http.StatusUnauthorized, apperror.CodeOf(err))
		_, err = uc.DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionApprove, "forged")
		assert.Equal(t, http.StatusUnauthorized, apperror.CodeOf(err))
		f.usedTokens.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("links disabled", func(t *testing.T) {
		f := newInterviewFixture()
		f.tokens = nil
		_, err := f.usecase("", nil).DecideRescheduleByLink(context.Background(), "R1", domain.RescheduleActionApprove, "anything")
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})
}
