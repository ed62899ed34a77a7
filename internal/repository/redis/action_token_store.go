package redis

import (
	"context"
	"sync"
	"time"

	"interview-marketplace-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const usedTokenKeyPrefix = "used:action-token:"

type actionTokenStore struct {
	client *goredis.Client
}

// NewActionTokenStore records used link tokens in Redis. Without a client the
// tokens are tracked in process memory.
func NewActionTokenStore(client *goredis.Client) domain.ActionTokenStore {
	if client == nil {
		return &memoryTokenStore{used: make(map[string]time.Time)}
	}
	return &actionTokenStore{client: client}
}

func (s *actionTokenStore) Consume(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, usedTokenKeyPrefix+id, 1, ttl).Result()
}

type memoryTokenStore struct {
	mu   sync.Mutex
	used map[string]time.Time
}

func (s *memoryTokenStore) Consume(_ context.Context, id string, ttl time.Duration) (bool, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, exp := range s.used {
		if now.After(exp) {
			delete(s.used, k)
		}
	}
	if _, ok := s.used[id]; ok {
		return false, nil
	}
	s.used[id] = now.Add(ttl)
	return true, nil
}
