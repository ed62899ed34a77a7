package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"interview-marketplace-backend/internal/usecase"
)

func TestHealthUsecase(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("dial tcp: refused") }

	t.Run("all up", func(t *testing.T) {
		status, healthy := usecase.NewHealthUsecase(
			map[string]usecase.HealthCheck{"database": ok},
			map[string]usecase.HealthCheck{"redis": ok, "smtp": nil},
		).Check(context.Background())

		assert.True(t, healthy)
		assert.Equal(t, map[string]string{"status": "ok", "database": "up", "redis": "up", "smtp": "disabled"}, status)
	})

	t.Run("optional failure degrades only", func(t *testing.T) {
		status, healthy := usecase.NewHealthUsecase(
			map[string]usecase.HealthCheck{"database": ok},
			map[string]usecase.HealthCheck{"redis": fail},
		).Check(context.Background())

		assert.True(t, healthy)
		assert.Equal(t, "degraded", status["redis"])
	})

	t.Run("required failure", func(t *testing.T) {
		status, healthy := usecase.NewHealthUsecase(
			map[string]usecase.HealthCheck{"database": fail},
			nil,
		).Check(context.Background())

		assert.False(t, healthy)
		assert.Equal(t, "unavailable", status["status"])
		assert.Equal(t, "down", status["database"])
	})
}
