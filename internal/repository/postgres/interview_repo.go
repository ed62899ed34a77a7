package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const requestColumns = `id, interviewer_id, candidate_id, candidate_name, position, date, time_range,
	from_time, to_time, iso_date, status, reschedule_approved, reschedule_requested_by, meeting_link,
	created_at, updated_at`

const scheduledColumns = `id, candidate_id, interviewer_id, interviewer_name, date, from_time, to_time,
	iso_date, price, status, reschedule_approved, reschedule_requested_by, meeting_link,
	created_at, updated_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Create writes both mirrors, the booked slot and the pending counter in one transaction.
func (r *interviewRepo) Create(ctx context.Context, in *domain.NewInterview) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	req := in.Request
	_, err = tx.Exec(ctx, `
		INSERT INTO interview_requests (`+requestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())`,
		req.ID, req.InterviewerID, req.CandidateID, req.CandidateName, req.Position, req.Date, req.Time,
		req.From, req.To, req.ISODate, string(req.Status), req.RescheduleApproved, req.RescheduleRequestedBy, req.MeetingLink,
	)
	if err != nil {
		return fmt.Errorf("failed to insert interview request: %w", err)
	}

	s := in.Scheduled
	_, err = tx.Exec(ctx, `
		INSERT INTO scheduled_interviews (`+scheduledColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`,
		s.ID, s.CandidateID, s.InterviewerID, s.InterviewerName, s.Date, s.From, s.To,
		s.ISODate, s.Price, string(s.Status), s.RescheduleApproved, s.RescheduleRequestedBy, s.MeetingLink,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scheduled interview: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO booked_slots (interview_request_id, interviewer_id, date, from_time, to_time)
		VALUES ($1, $2, $3, $4, $5)`,
		req.ID, req.InterviewerID, in.Slot.Date, in.Slot.From, in.Slot.To,
	)
	if err != nil {
		return fmt.Errorf("failed to book slot: %w", err)
	}

	result, err := tx.Exec(ctx, `UPDATE interviewers SET pending_requests = pending_requests + 1, updated_at = NOW() WHERE id = $1`, req.InterviewerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	err = insertTransition(ctx, tx, domain.Transition{
		InterviewRequestID: req.ID,
		ToStatus:           req.Status,
		Actor:              req.CandidateID,
	})
	if err != nil {
		return fmt.Errorf("failed to log transition: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) GetRequest(ctx context.Context, id string) (*domain.InterviewRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM interview_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

func (r *interviewRepo) GetScheduled(ctx context.Context, id string) (*domain.ScheduledInterview, error) {
	row := r.db.QueryRow(ctx, `SELECT `+scheduledColumns+` FROM scheduled_interviews WHERE id = $1`, id)
	s, err := scanScheduled(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.ScheduledInterview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+scheduledColumns+`
		FROM scheduled_interviews WHERE candidate_id = $1
		ORDER BY iso_date DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ScheduledInterview{}
	for rows.Next() {
		s, err := scanScheduled(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *interviewRepo) ListByInterviewer(ctx context.Context, interviewerID string) ([]domain.InterviewRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+requestColumns+`
		FROM interview_requests WHERE interviewer_id = $1
		ORDER BY iso_date DESC`, interviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.InterviewRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (r *interviewRepo) HasActiveBooking(ctx context.Context, interviewerID string, slot domain.BookedSlot) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM booked_slots b
			JOIN interview_requests ir ON ir.id = b.interview_request_id
			WHERE b.interviewer_id = $1 AND b.date = $2 AND b.from_time = $3 AND b.to_time = $4
			  AND ir.status <> ALL($5::text[])
		)`,
		interviewerID, slot.Date, slot.From, slot.To,
		pq.Array([]string{string(domain.StatusCancelled), string(domain.StatusCompleted)}),
	).Scan(&exists)
	return exists, err
}

func (r *interviewRepo) ApplyTransition(ctx context.Context, change domain.StatusChange) (domain.UpdateResult, error) {
	var res domain.UpdateResult

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback(ctx)

	// Lock both mirrors before touching either.
	var interviewerStatus, interviewerID string
	err = tx.QueryRow(ctx,
		`SELECT status, interviewer_id FROM interview_requests WHERE id = $1 FOR UPDATE`,
		change.InterviewRequestID,
	).Scan(&interviewerStatus, &interviewerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res.InterviewerMatched = 1

	var candidateStatus string
	err = tx.QueryRow(ctx,
		`SELECT status FROM scheduled_interviews WHERE id = $1 AND ($2::text = '' OR candidate_id = $2::text) FOR UPDATE`,
		change.InterviewRequestID, change.CandidateID,
	).Scan(&candidateStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res.CandidateMatched = 1

	from := statusStrings(change.From)

	query, args := mirrorUpdate("interview_requests", change, change.InterviewerMeetingLink, true, from)
	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return res, fmt.Errorf("failed to update interview request: %w", err)
	}
	res.InterviewerModified = result.RowsAffected()

	query, args = mirrorUpdate("scheduled_interviews", change, change.CandidateMeetingLink, false, from)
	result, err = tx.Exec(ctx, query, args...)
	if err != nil {
		return res, fmt.Errorf("failed to update scheduled interview: %w", err)
	}
	res.CandidateModified = result.RowsAffected()

	if !res.Modified() {
		return res, domain.ErrConflict
	}
	if res.InterviewerModified == 0 || res.CandidateModified == 0 {
		return res, fmt.Errorf("interview %s mirrors disagree (interviewer %q, candidate %q): %w",
			change.InterviewRequestID, interviewerStatus, candidateStatus, domain.ErrConflict)
	}

	switch {
	case change.ReleaseSlot:
		if _, err := tx.Exec(ctx, `DELETE FROM booked_slots WHERE interview_request_id = $1`, change.InterviewRequestID); err != nil {
			return res, fmt.Errorf("failed to release slot: %w", err)
		}
	case change.Schedule != nil:
		_, err := tx.Exec(ctx, `
			UPDATE booked_slots SET date = $2, from_time = $3, to_time = $4
			WHERE interview_request_id = $1`,
			change.InterviewRequestID, change.Schedule.SlotDate, change.Schedule.From, change.Schedule.To,
		)
		if err != nil {
			return res, fmt.Errorf("failed to move slot: %w", err)
		}
	}

	if change.PendingDelta != 0 {
		_, err := tx.Exec(ctx, `
			UPDATE interviewers SET pending_requests = GREATEST(pending_requests + $2, 0), updated_at = NOW()
			WHERE id = $1`,
			interviewerID, change.PendingDelta,
		)
		if err != nil {
			return res, fmt.Errorf("failed to update pending requests: %w", err)
		}
	}

	err = insertTransition(ctx, tx, domain.Transition{
		InterviewRequestID: change.InterviewRequestID,
		FromStatus:         domain.InterviewStatus(interviewerStatus),
		ToStatus:           change.To,
		Actor:              change.Actor,
		Note:               change.Note,
	})
	if err != nil {
		return res, fmt.Errorf("failed to log transition: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (r *interviewRepo) ListTransitions(ctx context.Context, interviewRequestID string) ([]domain.Transition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, interview_request_id, from_status, to_status, actor, note, occurred_at
		FROM interview_transitions WHERE interview_request_id = $1
		ORDER BY id`, interviewRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Transition{}
	for rows.Next() {
		var t domain.Transition
		var from, to string
		if err := rows.Scan(&t.ID, &t.InterviewRequestID, &from, &to, &t.Actor, &t.Note, &t.OccurredAt); err != nil {
			return nil, err
		}
		t.FromStatus = domain.InterviewStatus(from)
		t.ToStatus = domain.InterviewStatus(to)
		out = append(out, t)
	}
	return out, rows.Err()
}

// mirrorUpdate builds the conditional UPDATE for one side. $1 is the id,
// $2 the allowed current statuses and $3 the new status.
func mirrorUpdate(table string, change domain.StatusChange, link *string, withTimeRange bool, from []string) (string, []any) {
	sets := []string{"status = $3", "updated_at = NOW()"}
	args := []any{change.InterviewRequestID, pq.Array(from), string(change.To)}

	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if change.RescheduleApproved != nil {
		add("reschedule_approved", *change.RescheduleApproved)
	}
	if change.RescheduleRequestedBy != nil {
		add("reschedule_requested_by", *change.RescheduleRequestedBy)
	}
	if link != nil {
		add("meeting_link", *link)
	}
	if s := change.Schedule; s != nil {
		add("date", s.Date)
		add("from_time", s.From)
		add("to_time", s.To)
		add("iso_date", s.ISODate)
		if withTimeRange {
			add("time_range", s.Time)
		}
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 AND status = ANY($2::text[])`, table, strings.Join(sets, ", "))
	return query, args
}

func scanRequest(row pgx.Row) (*domain.InterviewRequest, error) {
	var req domain.InterviewRequest
	var status string
	err := row.Scan(
		&req.ID, &req.InterviewerID, &req.CandidateID, &req.CandidateName, &req.Position, &req.Date, &req.Time,
		&req.From, &req.To, &req.ISODate, &status, &req.RescheduleApproved, &req.RescheduleRequestedBy, &req.MeetingLink,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = domain.InterviewStatus(status)
	return &req, nil
}

func scanScheduled(row pgx.Row) (*domain.ScheduledInterview, error) {
	var s domain.ScheduledInterview
	var status string
	err := row.Scan(
		&s.ID, &s.CandidateID, &s.InterviewerID, &s.InterviewerName, &s.Date, &s.From, &s.To,
		&s.ISODate, &s.Price, &status, &s.RescheduleApproved, &s.RescheduleRequestedBy, &s.MeetingLink,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = domain.InterviewStatus(status)
	return &s, nil
}
