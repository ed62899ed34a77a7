package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"interview-marketplace-backend/internal/domain"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateProfile(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

type MockInterviewerRepo struct {
	mock.Mock
}

func (m *MockInterviewerRepo) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}

func (m *MockInterviewerRepo) UpdateProfile(ctx context.Context, i *domain.Interviewer) error {
	return m.Called(ctx, i).Error(0)
}

type MockAvailabilityRepo struct {
	mock.Mock
}

func (m *MockAvailabilityRepo) ListWindows(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityRepo) AddWindows(ctx context.Context, interviewerID string, windows []domain.AvailabilityWindow) (int, error) {
	args := m.Called(ctx, interviewerID, windows)
	return args.Int(0), args.Error(1)
}

func (m *MockAvailabilityRepo) RemoveWindow(ctx context.Context, windowID string) error {
	return m.Called(ctx, windowID).Error(0)
}

func (m *MockAvailabilityRepo) ListBookedSlots(ctx context.Context, interviewerID string) ([]domain.BookedSlot, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookedSlot), args.Error(1)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, in *domain.NewInterview) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockInterviewRepo) GetRequest(ctx context.Context, id string) (*domain.InterviewRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewRepo) GetScheduled(ctx context.Context, id string) (*domain.ScheduledInterview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledInterview), args.Error(1)
}

func (m *MockInterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.ScheduledInterview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledInterview), args.Error(1)
}

func (m *MockInterviewRepo) ListByInterviewer(ctx context.Context, interviewerID string) ([]domain.InterviewRequest, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewRequest), args.Error(1)
}

func (m *MockInterviewRepo) HasActiveBooking(ctx context.Context, interviewerID string, slot domain.BookedSlot) (bool, error) {
	args := m.Called(ctx, interviewerID, slot)
	return args.Bool(0), args.Error(1)
}

func (m *MockInterviewRepo) ApplyTransition(ctx context.Context, change domain.StatusChange) (domain.UpdateResult, error) {
	args := m.Called(ctx, change)
	return args.Get(0).(domain.UpdateResult), args.Error(1)
}

func (m *MockInterviewRepo) ListTransitions(ctx context.Context, interviewRequestID string) ([]domain.Transition, error) {
	args := m.Called(ctx, interviewRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transition), args.Error(1)
}

// MockFeedbackRepo runs the apply func against Counters so tests can assert
// on the statistics a submission would persist.
type MockFeedbackRepo struct {
	mock.Mock
	Counters domain.FeedbackCounters
}

func (m *MockFeedbackRepo) Exists(ctx context.Context, subject domain.FeedbackSubject, subjectID, interviewRequestID string) (bool, error) {
	args := m.Called(ctx, subject, subjectID, interviewRequestID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepo) Record(ctx context.Context, rec *domain.FeedbackRecord, apply func(domain.FeedbackCounters) domain.FeedbackCounters) (domain.FeedbackCounters, error) {
	args := m.Called(ctx, rec)
	if err := args.Error(0); err != nil {
		return m.Counters, err
	}
	m.Counters = apply(m.Counters)
	return m.Counters, nil
}

func (m *MockFeedbackRepo) ListBySubject(ctx context.Context, subject domain.FeedbackSubject, subjectID string, limit int) ([]domain.FeedbackEntry, error) {
	args := m.Called(ctx, subject, subjectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedbackEntry), args.Error(1)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

// recordingNotifier keeps every notice it is given.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (n *recordingNotifier) Notify(_ context.Context, notices ...domain.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notices...)
}

func (n *recordingNotifier) sent() []domain.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notice(nil), n.notices...)
}

func fixedID(id string) domain.IDGenerator {
	return func() string { return id }
}

type MockActionTokenStore struct {
	mock.Mock
}

func (m *MockActionTokenStore) Consume(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, id, ttl)
	return args.Bool(0), args.Error(1)
}
