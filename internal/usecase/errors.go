package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/logger"
)

// repoError maps repository sentinels to HTTP-aware errors.
func repoError(err error, notFound, conflict string) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(notFound)
	case errors.Is(err, domain.ErrConflict):
		return apperror.New(http.StatusConflict, conflict, err)
	default:
		logger.Log.Error("repository error", "error", err)
		return apperror.Internal(err)
	}
}

// actorFrom returns the authenticated user id, or "system".
func actorFrom(ctx context.Context) string {
	if id, ok := ctx.Value(domain.KeyUserID).(string); ok && id != "" {
		return id
	}
	return "system"
}

// caller returns the authenticated user id and whether the caller may act for
// either party: admins, and internal callers whose context has no user id.
func caller(ctx context.Context) (string, bool) {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return "", true
	}
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return userID, role == domain.RoleAdmin
}

// sideOf returns the role userID plays in req, or "" when they are not a party.
func sideOf(req *domain.InterviewRequest, userID string) string {
	switch userID {
	case req.CandidateID:
		return domain.RoleCandidate
	case req.InterviewerID:
		return domain.RoleInterviewer
	}
	return ""
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
