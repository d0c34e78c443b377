package match

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 7 * 24 * time.Hour

// RedisStore keeps match records in Redis as JSON under one key per ordered
// pair. Records expire after ttl so abandoned games do not accumulate;
// every Put refreshes the clock.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func matchKey(host, opponent string) string {
	return "arbiter:match:" + pairKey(host, opponent)
}

func (s *RedisStore) Get(ctx context.Context, host, opponent string) (*Match, error) {
	raw, err := s.rdb.Get(ctx, matchKey(host, opponent)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoMatch
	}
	if err != nil {
		return nil, err
	}
	var m Match
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *RedisStore) Put(ctx context.Context, m *Match) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, matchKey(m.Host, m.Opponent), raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, host, opponent string) error {
	return s.rdb.Del(ctx, matchKey(host, opponent)).Err()
}
