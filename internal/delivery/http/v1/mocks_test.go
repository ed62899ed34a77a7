package v1_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/rating"
)

type MockInterviewUsecase struct {
	mock.Mock
}

func (m *MockInterviewUsecase) ScheduleInterview(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduledInterview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledInterview), args.Error(1)
}

func (m *MockInterviewUsecase) ListScheduledInterviews(ctx context.Context, candidateID string) ([]domain.ScheduledInterview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledInterview), args.Error(1)
}

func (m *MockInterviewUsecase) ListInterviewRequests(ctx context.Context, interviewerID string) ([]domain.InterviewRequest, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) UpdateInterviewRequest(ctx context.Context, id string, status domain.InterviewStatus) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) RequestReschedule(ctx context.Context, req domain.RescheduleRequest) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) ApproveReschedule(ctx context.Context, id, candidateID string) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, id, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) RejectReschedule(ctx context.Context, id, candidateID string) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, id, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) DecideRescheduleByLink(ctx context.Context, id, action, token string) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, id, action, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewUsecase) GetHistory(ctx context.Context, id string) ([]domain.Transition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transition), args.Error(1)
}

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) AddAvailability(ctx context.Context, interviewerID string, windows []domain.AvailabilityWindow) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, interviewerID, windows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityUsecase) RemoveAvailability(ctx context.Context, windowID string) error {
	return m.Called(ctx, windowID).Error(0)
}

func (m *MockAvailabilityUsecase) ListAvailability(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityUsecase) GetAvailableSlots(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

type MockFeedbackUsecase struct {
	mock.Mock
}

func (m *MockFeedbackUsecase) AddInterviewerFeedback(ctx context.Context, interviewerID, interviewRequestID string, feedback map[string]rating.Section) (*domain.FeedbackEntry, error) {
	args := m.Called(ctx, interviewerID, interviewRequestID, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedbackEntry), args.Error(1)
}

func (m *MockFeedbackUsecase) AddCandidateFeedback(ctx context.Context, candidateID, interviewRequestID string, feedback map[string]rating.Section) (*domain.FeedbackEntry, error) {
	args := m.Called(ctx, candidateID, interviewRequestID, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedbackEntry), args.Error(1)
}

func (m *MockFeedbackUsecase) GetCandidateStatistics(ctx context.Context, candidateID string) (*domain.CandidateStatistics, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateStatistics), args.Error(1)
}

func (m *MockFeedbackUsecase) GetInterviewerStatistics(ctx context.Context, interviewerID string) (*domain.InterviewerStatistics, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewerStatistics), args.Error(1)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockProfileUsecase) GetInterviewer(ctx context.Context, id string) (*domain.Interviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}

func (m *MockProfileUsecase) UpdateCandidateProfile(ctx context.Context, c *domain.Candidate) (*domain.ProfileCompletion, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileCompletion), args.Error(1)
}

func (m *MockProfileUsecase) UpdateInterviewerProfile(ctx context.Context, i *domain.Interviewer) (*domain.ProfileCompletion, error) {
	args := m.Called(ctx, i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileCompletion), args.Error(1)
}

func (m *MockProfileUsecase) GetCandidateProfileCompletion(ctx context.Context, id string) (*domain.ProfileCompletion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileCompletion), args.Error(1)
}

func (m *MockProfileUsecase) GetInterviewerProfileCompletion(ctx context.Context, id string) (*domain.ProfileCompletion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileCompletion), args.Error(1)
}

type MockHealthUsecase struct {
	mock.Mock
}

func (m *MockHealthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string), args.Bool(1)
}
