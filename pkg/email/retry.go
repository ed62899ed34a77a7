package email

import (
	"context"
	"fmt"
	"time"

	"interview-marketplace-backend/internal/domain"
)

const maxRetryDelay = 5 * time.Second

// RetryingSender retries a failed send with exponential backoff:
// base, 2*base, 4*base ... capped at maxRetryDelay.
type RetryingSender struct {
	next        domain.NotificationSender
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewRetryingSender(next domain.NotificationSender, maxAttempts int, baseDelay time.Duration) *RetryingSender {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 200 * time.Millisecond
	}
	return &RetryingSender{
		next:        next,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		sleep:       sleepContext,
	}
}

func (r *RetryingSender) Send(ctx context.Context, to, subject, text, html string) error {
	var err error
	delay := r.baseDelay
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = r.next.Send(ctx, to, subject, text, html); err == nil {
			return nil
		}
		if err == ErrNotConfigured || attempt == r.maxAttempts {
			break
		}
		if serr := r.sleep(ctx, delay); serr != nil {
			return fmt.Errorf("send aborted after %d attempts: %w", attempt, serr)
		}
		delay *= 2
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
	return fmt.Errorf("send failed after retries: %w", err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
