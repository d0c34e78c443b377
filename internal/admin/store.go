package admin

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

const redisKey = "arbiter:admin"

// RedisStore keeps the admin record in Redis next to the match registry.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	v, err := s.rdb.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *RedisStore) Save(ctx context.Context, admin string) error {
	if admin == "" {
		return s.rdb.Del(ctx, redisKey).Err()
	}
	return s.rdb.Set(ctx, redisKey, admin, 0).Err()
}

// MemoryStore is the in-memory counterpart for tests and DB-less runs.
type MemoryStore struct {
	mu    sync.RWMutex
	admin string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin, nil
}

func (s *MemoryStore) Save(ctx context.Context, admin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
	return nil
}
