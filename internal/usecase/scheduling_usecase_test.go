package usecase_test

import (
	"context"
	"errors"
	"net/http"
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

type interviewFixture struct {
	candidates   *MockCandidateRepo
	interviewers *MockInterviewerRepo
	interviews   *MockInterviewRepo
	notifier     *recordingNotifier
	tokens       *auth.ActionTokens
	usedTokens   *MockActionTokenStore
}

func newInterviewFixture() *interviewFixture {
	return &interviewFixture{
		candidates:   new(MockCandidateRepo),
		interviewers: new(MockInterviewerRepo),
		interviews:   new(MockInterviewRepo),
		notifier:     &recordingNotifier{},
		tokens:       auth.NewActionTokens("link-secret", time.Hour),
		usedTokens:   new(MockActionTokenStore),
	}
}

func (f *interviewFixture) usecase(policy string, locker domain.RecordLocker) domain.InterviewUsecase {
	deps := usecase.InterviewUsecaseDeps{
		Candidates:     f.candidates,
		Interviewers:   f.interviewers,
		Interviews:     f.interviews,
		Notifier:       f.notifier,
		NewID:          fixedID("R1"),
		ConflictPolicy: policy,
		Location:       time.UTC,
		AppBaseURL:     "https://api.example.com/",
		ActionTokens:   f.tokens,
		UsedTokens:     f.usedTokens,
	}
	if locker != nil {
		deps.Locker = locker
	}
	return usecase.NewInterviewUsecase(deps)
}

var (
	candidateC1   = &domain.Candidate{ID: "C1", Name: "Ada Lovelace", Email: "ada@example.com"}
	interviewerI1 = &domain.Interviewer{ID: "I1", Name: "Grace Hopper", Email: "grace@example.com"}
)

func validSchedule() domain.ScheduleRequest {
	return domain.ScheduleRequest{
		CandidateID:   "C1",
		InterviewerID: "I1",
		Date:          "2024-06-10",
		From:          "10:00 AM",
		To:            "11:00 AM",
		Price:         "50",
		Position:      "Backend Engineer",
	}
}

func TestScheduleInterview_MirroredRecords(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase(usecase.ConflictPolicyAllow, nil)
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "C1")

	f.candidates.On("GetByID", ctx, "C1").Return(candidateC1, nil)
	f.interviewers.On("GetByID", ctx, "I1").Return(interviewerI1, nil)

	var created *domain.NewInterview
	f.interviews.On("Create", ctx, mock.AnythingOfType("*domain.NewInterview")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.NewInterview) }).
		Return(nil)

	out, err := uc.ScheduleInterview(ctx, validSchedule())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "R1", out.ID)
	assert.Equal(t, created.Scheduled.ID, created.Request.ID)
	assert.Equal(t, "R1", created.Slot.InterviewRequestID)
	assert.Equal(t, domain.StatusRequested, created.Scheduled.Status)
	assert.Equal(t, domain.StatusRequested, created.Request.Status)

	assert.Equal(t, "Monday, June 10, 2024", created.Scheduled.Date)
	assert.Equal(t, created.Scheduled.Date, created.Request.Date)
	assert.Equal(t, "10:00 AM - 11:00 AM", created.Request.Time)
	assert.Equal(t, "06/10/2024", created.Slot.Date)
	assert.Equal(t, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), created.Scheduled.ISODate)
	assert.Equal(t, "Grace Hopper", created.Scheduled.InterviewerName)
	assert.Equal(t, "Ada Lovelace", created.Request.CandidateName)
	assert.Equal(t, "50", created.Scheduled.Price)

	notices := f.notifier.sent()
	require.Len(t, notices, 1)
	assert.Equal(t, "I1", notices[0].UserID)
	assert.Equal(t, domain.TemplateInterviewRequested, notices[0].Template)

	f.interviews.AssertNotCalled(t, "HasActiveBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleInterview_Validation(t *testing.T) {
	cases := map[string]func(r *domain.ScheduleRequest){
		"missing price":     func(r *domain.ScheduleRequest) { r.Price = "" },
		"missing candidate": func(r *domain.ScheduleRequest) { r.CandidateID = " " },
		"bad date":          func(r *domain.ScheduleRequest) { r.Date = "10-06-2024" },
		"bad from":          func(r *domain.ScheduleRequest) { r.From = "25:00 AM" },
		"24h to":            func(r *domain.ScheduleRequest) { r.To = "13:00" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newInterviewFixture()
			uc := f.usecase("", nil)
			req := validSchedule()
			mutate(&req)

			_, err := uc.ScheduleInterview(context.Background(), req)
			assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
			f.candidates.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			f.interviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestScheduleInterview_SlashDate(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.candidates.On("GetByID", ctx, "C1").Return(candidateC1, nil)
	f.interviewers.On("GetByID", ctx, "I1").Return(interviewerI1, nil)
	f.interviews.On("Create", ctx, mock.MatchedBy(func(in *domain.NewInterview) bool {
		return in.Slot.Date == "06/10/2024" && in.Scheduled.Date == "Monday, June 10, 2024"
	})).Return(nil)

	req := validSchedule()
	req.Date = "06/10/2024"
	_, err := uc.ScheduleInterview(ctx, req)
	require.NoError(t, err)
	f.interviews.AssertExpectations(t)
}

func TestScheduleInterview_NotFound(t *testing.T) {
	t.Run("candidate", func(t *testing.T) {
		f := newInterviewFixture()
		uc := f.usecase("", nil)
		f.candidates.On("GetByID", mock.Anything, "C1").Return(nil, nil)

		_, err := uc.ScheduleInterview(context.Background(), validSchedule())
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "Candidate not found")
	})

	t.Run("interviewer", func(t *testing.T) {
		f := newInterviewFixture()
		uc := f.usecase("", nil)
		f.candidates.On("GetByID", mock.Anything, "C1").Return(candidateC1, nil)
		f.interviewers.On("GetByID", mock.Anything, "I1").Return(nil, nil)

		_, err := uc.ScheduleInterview(context.Background(), validSchedule())
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "Interviewer not found")
		f.interviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestScheduleInterview_RejectPolicy(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase(usecase.ConflictPolicyReject, nil)
	ctx := context.Background()

	f.candidates.On("GetByID", ctx, "C1").Return(candidateC1, nil)
	f.interviewers.On("GetByID", ctx, "I1").Return(interviewerI1, nil)
	f.interviews.On("HasActiveBooking", ctx, "I1", domain.BookedSlot{Date: "06/10/2024", From: "10:00 AM", To: "11:00 AM"}).
		Return(true, nil)

	_, err := uc.ScheduleInterview(ctx, validSchedule())
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	f.interviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScheduleInterview_PersistenceFailure(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.candidates.On("GetByID", ctx, "C1").Return(candidateC1, nil)
	f.interviewers.On("GetByID", ctx, "I1").Return(interviewerI1, nil)
	f.interviews.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := uc.ScheduleInterview(ctx, validSchedule())
	assert.Equal(t, http.StatusInternalServerError, apperror.CodeOf(err))
	assert.Empty(t, f.notifier.sent())
}

func TestListScheduledInterviews(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.candidates.On("GetByID", ctx, "C1").Return(candidateC1, nil)
	f.candidates.On("GetByID", ctx, "missing").Return(nil, nil)
	f.interviews.On("ListByCandidate", ctx, "C1").Return([]domain.ScheduledInterview{{ID: "R1"}}, nil)

	list, err := uc.ListScheduledInterviews(ctx, "C1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListScheduledInterviews(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}

func TestListInterviewRequests(t *testing.T) {
	f := newInterviewFixture()
	uc := f.usecase("", nil)
	ctx := context.Background()

	f.interviewers.On("GetByID", ctx, "I1").Return(interviewerI1, nil)
	f.interviews.On("ListByInterviewer", ctx, "I1").Return([]domain.InterviewRequest{{ID: "R1"}, {ID: "R2"}}, nil)

	list, err := uc.ListInterviewRequests(ctx, "I1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
