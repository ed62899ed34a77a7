package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func subjectTable(subject domain.FeedbackSubject) (string, error) {
	switch subject {
	case domain.SubjectCandidate:
		return "candidates", nil
	case domain.SubjectInterviewer:
		return "interviewers", nil
	}
	return "", fmt.Errorf("unknown feedback subject %q", subject)
}

func (r *feedbackRepo) Exists(ctx context.Context, subject domain.FeedbackSubject, subjectID, interviewRequestID string) (bool, error) {
	return feedbackExists(ctx, r.db, subject, subjectID, interviewRequestID)
}

func feedbackExists(ctx context.Context, q querier, subject domain.FeedbackSubject, subjectID, interviewRequestID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM feedbacks
			WHERE subject_type = $1 AND subject_id = $2 AND interview_request_id = $3
		)`, string(subject), subjectID, interviewRequestID).Scan(&exists)
	return exists, err
}

func (r *feedbackRepo) Record(ctx context.Context, rec *domain.FeedbackRecord, apply func(domain.FeedbackCounters) domain.FeedbackCounters) (domain.FeedbackCounters, error) {
	var counters domain.FeedbackCounters

	table, err := subjectTable(rec.Subject)
	if err != nil {
		return counters, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return counters, err
	}
	defer tx.Rollback(ctx)

	// Candidates have no accepted counter.
	acceptedColumn := "0"
	if rec.Subject == domain.SubjectInterviewer {
		acceptedColumn = "total_accepted"
	}
	err = tx.QueryRow(ctx, fmt.Sprintf(`
		SELECT completed_interviews, total_feedback_count, %s, average_rating
		FROM %s WHERE id = $1 FOR UPDATE`, acceptedColumn, table),
		rec.SubjectID,
	).Scan(&counters.CompletedInterviews, &counters.TotalFeedbackCount, &counters.TotalAccepted, &counters.AverageRating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return counters, domain.ErrNotFound
		}
		return counters, err
	}

	exists, err := feedbackExists(ctx, tx, rec.Subject, rec.SubjectID, rec.Entry.InterviewRequestID)
	if err != nil {
		return counters, err
	}
	if exists {
		return counters, domain.ErrConflict
	}

	data, err := json.Marshal(rec.Entry.FeedbackData)
	if err != nil {
		return counters, fmt.Errorf("failed to encode feedback: %w", err)
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO feedbacks (subject_type, subject_id, interview_request_id, feedback_data, rating, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, NOW())
		RETURNING created_at`,
		string(rec.Subject), rec.SubjectID, rec.Entry.InterviewRequestID, string(data), rec.Entry.Rating,
	).Scan(&rec.Entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return counters, domain.ErrConflict
		}
		return counters, fmt.Errorf("failed to insert feedback: %w", err)
	}

	next := apply(counters)
	if rec.Subject == domain.SubjectInterviewer {
		_, err = tx.Exec(ctx, `
			UPDATE interviewers SET completed_interviews = $2, total_feedback_count = $3,
				total_accepted = $4, average_rating = $5, updated_at = NOW()
			WHERE id = $1`,
			rec.SubjectID, next.CompletedInterviews, next.TotalFeedbackCount, next.TotalAccepted, next.AverageRating)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE candidates SET completed_interviews = $2, total_feedback_count = $3,
				average_rating = $4, updated_at = NOW()
			WHERE id = $1`,
			rec.SubjectID, next.CompletedInterviews, next.TotalFeedbackCount, next.AverageRating)
	}
	if err != nil {
		return counters, fmt.Errorf("failed to update statistics: %w", err)
	}

	if rec.CompleteInterview {
		if err := completeInterview(ctx, tx, rec.Entry.InterviewRequestID, rec.Actor); err != nil {
			return counters, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return counters, err
	}
	return next, nil
}

// completeInterview moves both mirrors to Completed. Either mirror not being in
// a state that can complete is a conflict.
func completeInterview(ctx context.Context, tx pgx.Tx, id, actor string) error {
	from := pq.Array(statusStrings(domain.SourcesOf(domain.StatusCompleted)))

	var previous string
	err := tx.QueryRow(ctx, `SELECT status FROM interview_requests WHERE id = $1 FOR UPDATE`, id).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE interview_requests SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3::text[])`,
		id, string(domain.StatusCompleted), from,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	result, err = tx.Exec(ctx, `
		UPDATE scheduled_interviews SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3::text[])`,
		id, string(domain.StatusCompleted), from,
	)
	if err != nil {
		return fmt.Errorf("failed to complete scheduled interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	return insertTransition(ctx, tx, domain.Transition{
		InterviewRequestID: id,
		FromStatus:         domain.InterviewStatus(previous),
		ToStatus:           domain.StatusCompleted,
		Actor:              actor,
		Note:               "feedback recorded",
	})
}

func (r *feedbackRepo) ListBySubject(ctx context.Context, subject domain.FeedbackSubject, subjectID string, limit int) ([]domain.FeedbackEntry, error) {
	query := `
		SELECT interview_request_id, feedback_data, rating, created_at
		FROM feedbacks
		WHERE subject_type = $1 AND subject_id = $2
		ORDER BY created_at DESC, id DESC`
	args := []any{string(subject), subjectID}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.FeedbackEntry{}
	for rows.Next() {
		var e domain.FeedbackEntry
		var data []byte
		if err := rows.Scan(&e.InterviewRequestID, &data, &e.Rating, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &e.FeedbackData); err != nil {
			return nil, fmt.Errorf("failed to decode feedback %s: %w", e.InterviewRequestID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
