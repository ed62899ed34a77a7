package usecase

import (
	"context"
	"sort"
	"time"
)

// HealthCheck checks one dependency. A nil check reports the dependency as disabled.
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	// Check returns the status of every dependency and whether all required ones are up.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	required map[string]HealthCheck
	optional map[string]HealthCheck
	timeout  time.Duration
}

func NewHealthUsecase(required, optional map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{required: required, optional: optional, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true

	for _, name := range sortedKeys(u.required) {
		if err := run(ctx, u.required[name]); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	for _, name := range sortedKeys(u.optional) {
		check := u.optional[name]
		switch {
		case check == nil:
			status[name] = "disabled"
		case run(ctx, check) != nil:
			status[name] = "degraded"
		default:
			status[name] = "up"
		}
	}

	if !healthy {
		status["status"] = "unavailable"
	}
	return status, healthy
}

func run(ctx context.Context, check HealthCheck) error {
	if check == nil {
		return nil
	}
	return check(ctx)
}

func sortedKeys(m map[string]HealthCheck) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
