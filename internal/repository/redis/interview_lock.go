package redis

import (
	"context"
	"fmt"
	"time"

	"interview-marketplace-backend/internal/domain"
	"interview-marketplace-backend/pkg/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "lock:interview:"

// Deletes the key only if it still holds our token.
// KEYS[1] = lock key
// ARGV[1] = token
const releaseLuaScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

var releaseScript = goredis.NewScript(releaseLuaScript)

type interviewLocker struct {
	client *goredis.Client
}

// NewInterviewLocker returns a lock backed by SET NX. With a nil client, or
// when Redis cannot be reached, Acquire succeeds without locking.
func NewInterviewLocker(client *goredis.Client) domain.RecordLocker {
	return &interviewLocker{client: client}
}

func (l *interviewLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	noop := func() {}
	if l.client == nil {
		return noop, nil
	}

	fullKey := lockKeyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		logger.Log.Warn("interview lock unavailable, continuing without lock", "key", fullKey, "error", err)
		return noop, nil
	}
	if !ok {
		return nil, fmt.Errorf("interview %s is being modified: %w", key, domain.ErrConflict)
	}

	release := func() {
		// Release must not depend on the request context being alive.
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, l.client, []string{fullKey}, token).Err(); err != nil && err != goredis.Nil {
			logger.Log.Warn("failed to release interview lock", "key", fullKey, "error", err)
		}
	}
	return release, nil
}
