package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/carbazaar/admin-gateway/internal/models"
)

type RateLimitStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
	GetCount(ctx context.Context, key string) (int, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	pipe := s.client.Pipeline()

	incr := pipe.Incr(ctx, key)

	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return int(incr.Val()), nil
}

func (s *RedisStore) GetCount(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*rateLimitEntry
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string]*rateLimitEntry),
	}
}

func (s *MemoryStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, entry := range s.store {
		if now.After(entry.expiresAt) {
			delete(s.store, k)
		}
	}

	entry, exists := s.store[key]
	if !exists {
		entry = &rateLimitEntry{expiresAt: now.Add(window)}
		s.store[key] = entry
	}

	entry.count++
	return entry.count, nil
}

func (s *MemoryStore) GetCount(ctx context.Context, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[key]
	if !exists {
		return 0, nil
	}

	if time.Now().After(entry.expiresAt) {
		return 0, nil
	}

	return entry.count, nil
}

// RateLimiter throttles the login endpoint by client IP and, for
// authenticated routes, by gateway session.
type RateLimiter struct {
	store   RateLimitStore
	enabled bool
}

type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

func NewRateLimiter(store RateLimitStore, enabled bool) *RateLimiter {
	return &RateLimiter{
		store:   store,
		enabled: enabled,
	}
}

func (r *RateLimiter) RateLimit(config RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !r.enabled || !config.Enabled {
			return c.Next()
		}

		ip := c.IP()
		if ip == "" {
			ip = c.Context().RemoteIP().String()
		}

		sessionID := ""
		if claims, ok := c.Locals("claims").(*models.Claims); ok {
			sessionID = claims.SessionID
		}

		ipKey := fmt.Sprintf("rate_limit:ip:%s", ip)
		sessionKey := fmt.Sprintf("rate_limit:session:%s", sessionID)

		if err := r.checkRateLimit(c.Context(), ipKey, config); err != nil {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests from this IP",
			})
		}

		if sessionID != "" {
			if err := r.checkRateLimit(c.Context(), sessionKey, config); err != nil {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests for this session",
				})
			}
		}

		return c.Next()
	}
}

func (r *RateLimiter) checkRateLimit(ctx context.Context, key string, config RateLimitConfig) error {
	count, err := r.store.GetCount(ctx, key)
	if err != nil {
		return err
	}

	if count >= config.Limit {
		return fmt.Errorf("rate limit exceeded")
	}

	_, err = r.store.Increment(ctx, key, config.Window)
	return err
}
