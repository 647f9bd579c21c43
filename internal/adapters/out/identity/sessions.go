package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks open refresh sessions per account.
type SessionStore interface {
	Open(ctx context.Context, email, sessionID string, ttl time.Duration) error
	// Consume closes the session and reports whether it was still open.
	// Of several concurrent calls for one session at most one gets true.
	Consume(ctx context.Context, email, sessionID string) (bool, error)
	CloseAll(ctx context.Context, email string) error
}

// RedisSessionStore keeps one key per session plus a set of session ids per
// account so every session of an account can be revoked at once.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisSessionStore(client redis.UniversalClient, prefix string) *RedisSessionStore {
	if prefix == "" {
		prefix = "gamestore"
	}
	return &RedisSessionStore{client: client, prefix: prefix}
}

func (s *RedisSessionStore) sessionKey(email, sessionID string) string {
	return fmt.Sprintf("%s:session:%s:%s", s.prefix, email, sessionID)
}

func (s *RedisSessionStore) indexKey(email string) string {
	return fmt.Sprintf("%s:sessions:%s", s.prefix, email)
}

func (s *RedisSessionStore) Open(ctx context.Context, email, sessionID string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.sessionKey(email, sessionID), 1, ttl)
		pipe.SAdd(ctx, s.indexKey(email), sessionID)
		pipe.Expire(ctx, s.indexKey(email), ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) Consume(ctx context.Context, email, sessionID string) (bool, error) {
	var deleted *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, s.sessionKey(email, sessionID))
		pipe.SRem(ctx, s.indexKey(email), sessionID)
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted.Val() == 1, nil
}

func (s *RedisSessionStore) CloseAll(ctx context.Context, email string) error {
	ids, err := s.client.SMembers(ctx, s.indexKey(email)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.sessionKey(email, id))
	}
	keys = append(keys, s.indexKey(email))

	return s.client.Del(ctx, keys...).Err()
}
