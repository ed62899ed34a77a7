package postgres

import (
	"context"
	"fmt"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type availabilityRepo struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) domain.AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) ListWindows(ctx context.Context, interviewerID string) ([]domain.AvailabilityWindow, error) {
	return listWindows(ctx, r.db, interviewerID)
}

func (r *availabilityRepo) AddWindows(ctx context.Context, interviewerID string, windows []domain.AvailabilityWindow) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO availability_windows (id, interviewer_id, date, from_time, to_time, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (interviewer_id, date, from_time, to_time) DO NOTHING`

	added := 0
	for _, w := range windows {
		result, err := tx.Exec(ctx, query, w.ID, interviewerID, w.Date, w.From, w.To)
		if err != nil {
			return 0, fmt.Errorf("failed to insert availability window: %w", err)
		}
		added += int(result.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

func (r *availabilityRepo) RemoveWindow(ctx context.Context, windowID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM availability_windows WHERE id = $1`, windowID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *availabilityRepo) ListBookedSlots(ctx context.Context, interviewerID string) ([]domain.BookedSlot, error) {
	return listBookedSlots(ctx, r.db, interviewerID)
}

func listWindows(ctx context.Context, q querier, interviewerID string) ([]domain.AvailabilityWindow, error) {
	rows, err := q.Query(ctx, `
		SELECT id, date, from_time, to_time
		FROM availability_windows
		WHERE interviewer_id = $1
		ORDER BY created_at, id`, interviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windows := []domain.AvailabilityWindow{}
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.Date, &w.From, &w.To); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

func listBookedSlots(ctx context.Context, q querier, interviewerID string) ([]domain.BookedSlot, error) {
	rows, err := q.Query(ctx, `
		SELECT interview_request_id, date, from_time, to_time
		FROM booked_slots
		WHERE interviewer_id = $1
		ORDER BY date, from_time`, interviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []domain.BookedSlot{}
	for rows.Next() {
		var s domain.BookedSlot
		if err := rows.Scan(&s.InterviewRequestID, &s.Date, &s.From, &s.To); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
