package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"innkeeper/models"
)

const sessionKeyPrefix = "chat:sess:"

// RedisStore keeps sessions as JSON blobs in Redis. A zero TTL keeps them
// for the lifetime of the Redis instance.
type RedisStore struct {
	client       *redis.Client
	ttl          time.Duration
	systemPrompt string
}

func NewRedisStore(client *redis.Client, ttl time.Duration, systemPrompt string) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, systemPrompt: systemPrompt}
}

func (s *RedisStore) load(ctx context.Context, sessionID string) (*models.SessionState, bool, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return newSessionState(s.systemPrompt), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var st models.SessionState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, false, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &st, true, nil
}

func (s *RedisStore) save(ctx context.Context, sessionID string, st *models.SessionState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	st, existed, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !existed {
		if err := s.save(ctx, sessionID, st); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID, role, content string) error {
	st, _, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	st.Transcript = append(st.Transcript, models.ChatMessage{Role: role, Content: content})
	return s.save(ctx, sessionID, st)
}

func (s *RedisStore) Mutate(ctx context.Context, sessionID string, fn func(*models.SessionState)) error {
	st, _, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(st)
	return s.save(ctx, sessionID, st)
}

func (s *RedisStore) ResetLast(ctx context.Context, sessionID string) (ResetStatus, error) {
	st, existed, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !existed {
		return ResetSessionNotFound, nil
	}
	status := resetTranscript(st)
	if err := s.save(ctx, sessionID, st); err != nil {
		return "", err
	}
	return status, nil
}
