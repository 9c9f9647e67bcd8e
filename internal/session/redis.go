package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sahayak-backend/internal/models"
)

// RedisStore keeps sessions in Redis with a per-key idle TTL, so state
// survives restarts and can be shared across instances. Expiry is Redis's
// job; there is no sweep here.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("chat_session:%s", userID)
}

func (st *RedisStore) Get(ctx context.Context, userID string) (*models.Session, error) {
	data, err := st.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt entry is unrecoverable; start the conversation over.
		st.client.Del(ctx, sessionKey(userID))
		return nil, nil
	}
	return &s, nil
}

func (st *RedisStore) Put(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := st.client.Set(ctx, sessionKey(s.UserID), data, st.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (st *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := st.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
