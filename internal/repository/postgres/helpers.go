package postgres

import (
	"context"
	"errors"

	"interview-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// textArray never encodes NULL, the array columns are NOT NULL.
func textArray(s []string) interface{} {
	if s == nil {
		s = []string{}
	}
	return pq.Array(s)
}

func statusStrings(statuses []domain.InterviewStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func insertTransition(ctx context.Context, q querier, t domain.Transition) error {
	_, err := q.Exec(ctx, `
		INSERT INTO interview_transitions (interview_request_id, from_status, to_status, actor, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		t.InterviewRequestID, string(t.FromStatus), string(t.ToStatus), t.Actor, t.Note,
	)
	return err
}
