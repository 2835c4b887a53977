package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session entry not found")

// Store is the durable two-entry storage behind a gateway session: the backend
// bearer token and the serialized user document, each under its own key.
type Store interface {
	SetEntry(ctx context.Context, sessionID, field, value string, ttl time.Duration) error
	GetEntry(ctx context.Context, sessionID, field string) (string, error)
	DeleteEntries(ctx context.Context, sessionID string, fields ...string) error
}

const (
	FieldToken = "token"
	FieldUser  = "user"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sessionID, field string) string {
	return "admsession:" + sessionID + ":" + field
}

func (s *RedisStore) SetEntry(ctx context.Context, sessionID, field, value string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(sessionID, field), value, ttl).Err()
}

func (s *RedisStore) GetEntry(ctx context.Context, sessionID, field string) (string, error) {
	value, err := s.client.Get(ctx, sessionKey(sessionID, field)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return value, err
}

func (s *RedisStore) DeleteEntries(ctx context.Context, sessionID string, fields ...string) error {
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, sessionKey(sessionID, field))
	}
	return s.client.Del(ctx, keys...).Err()
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) SetEntry(ctx context.Context, sessionID, field, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	s.entries[sessionKey(sessionID, field)] = memoryEntry{value: value, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) GetEntry(ctx context.Context, sessionID, field string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[sessionKey(sessionID, field)]
	if !exists {
		return "", ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) DeleteEntries(ctx context.Context, sessionID string, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range fields {
		delete(s.entries, sessionKey(sessionID, field))
	}
	return nil
}
