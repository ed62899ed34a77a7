package usecase

import (
	"context"
	"strings"
	"time"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/timeslot"
)

type availabilityUsecase struct {
	interviewers domain.InterviewerRepository
	repo         domain.AvailabilityRepository
	newID        domain.IDGenerator
	now          func() time.Time
}

func NewAvailabilityUsecase(interviewers domain.InterviewerRepository, repo domain.AvailabilityRepository, newID domain.IDGenerator, loc *time.Location) domain.AvailabilityUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityUsecase{
		interviewers: interviewers,
		repo:         repo,
		newID:        newID,
		now:          func() time.Time { return time.Now().In(loc) },
	}
}

func (u *availabilityUsecase) AddAvailability(ctx context.Context, interviewerID string, windows []domain.AvailabilityWindow) ([]domain.AvailabilityWindow, error) {
	if len(windows) == 0 {
		return nil, apperror.BadRequest("Availability dates are required")
	}
	for _, w := range windows {
		if blank(w.Date, w.From, w.To) {
			return nil, apperror.BadRequest("Each availability window needs a date, from and to")
		}
	}

	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}

	// Set semantics on the raw triple, matching the unique index.
	seen := make(map[[3]string]bool, len(interviewer.Availability.Dates)+len(windows))
	for _, w := range interviewer.Availability.Dates {
		seen[[3]string{w.Date, w.From, w.To}] = true
	}
	fresh := make([]domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		key := [3]string{w.Date, w.From, w.To}
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, domain.AvailabilityWindow{ID: u.newID(), Date: w.Date, From: w.From, To: w.To})
	}

	if len(fresh) > 0 {
		if _, err := u.repo.AddWindows(ctx, interviewerID, fresh); err != nil {
			return nil, repoError(err, "Interviewer not found", "")
		}
	}

	all, err := u.repo.ListWindows(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	return all, nil
}

func (u *availabilityUsecase) RemoveAvailability(ctx context.Context, windowID string) error {
	if strings.TrimSpace(windowID) == "" {
		return apperror.BadRequest("Availability id is required")
	}
	if err := u.repo.RemoveWindow(ctx, windowID); err != nil {
		return repoError(err, "Availability not found", "")
	}
	return nil
}

func (u *availabilityUsecase) ListAvailability(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}
	if interviewer.Availability.Dates == nil {
		return []domain.AvailabilityWindow{}, nil
	}
	return interviewer.Availability.Dates, nil
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	interviewer, err := u.interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		return nil, repoError(err, "Interviewer not found", "")
	}
	if interviewer == nil {
		return nil, apperror.NotFound("Interviewer not found")
	}
	return ComputeAvailableSlots(interviewer.Availability.Dates, interviewer.BookedSlots, u.now()), nil
}

// ComputeAvailableSlots returns the windows that have not ended before now and
// are not taken by a booked slot. A window whose date or end time cannot be
// parsed is treated as expired.
func ComputeAvailableSlots(windows []domain.AvailabilityWindow, booked []domain.BookedSlot, now time.Time) []domain.AvailabilityWindow {
	out := []domain.AvailabilityWindow{}
	for _, w := range windows {
		if timeslot.IsExpired(w.Date, w.To, now) {
			continue
		}
		if isBooked(w, booked) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isBooked(w domain.AvailabilityWindow, booked []domain.BookedSlot) bool {
	ws := timeslot.Slot{Date: w.Date, From: w.From, To: w.To}
	for _, b := range booked {
		if timeslot.SameSlot(ws, timeslot.Slot{Date: b.Date, From: b.From, To: b.To}) {
			return true
		}
	}
	return false
}
