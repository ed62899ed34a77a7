package domain

import "context"

// AvailabilityWindow is a date/from/to triple an interviewer can be booked in.
// The strings are stored exactly as the client sent them.
type AvailabilityWindow struct {
	ID   string `json:"id"`
	Date string `json:"date" binding:"required"`
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type Availability struct {
	Dates []AvailabilityWindow `json:"dates"`
}

// BookedSlot is a window consumed by a pending or confirmed interview.
type BookedSlot struct {
	Date               string `json:"date"`
	From               string `json:"from"`
	To                 string `json:"to"`
	InterviewRequestID string `json:"-"`
}

type AvailabilityRepository interface {
	ListWindows(ctx context.Context, interviewerID string) ([]AvailabilityWindow, error)
	// AddWindows inserts the windows, skipping duplicates, and returns how many were added.
	AddWindows(ctx context.Context, interviewerID string, windows []AvailabilityWindow) (int, error)
	// RemoveWindow returns ErrNotFound when no window has the id.
	RemoveWindow(ctx context.Context, windowID string) error
	ListBookedSlots(ctx context.Context, interviewerID string) ([]BookedSlot, error)
}

type AvailabilityUsecase interface {
	AddAvailability(ctx context.Context, interviewerID string, windows []AvailabilityWindow) ([]AvailabilityWindow, error)
	RemoveAvailability(ctx context.Context, windowID string) error
	ListAvailability(ctx context.Context, interviewerID string) ([]AvailabilityWindow, error)
	GetAvailableSlots(ctx context.Context, interviewerID string) ([]AvailabilityWindow, error)
}
