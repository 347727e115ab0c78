package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

const defaultMatchTTL = 30 * time.Second

// MatchCache stores blood-match results in Redis.
//
// Key format:
//
//	match-gen:<bloodGroup>:<location>        generation counter, no TTL
//	match:<bloodGroup>:<location>:<gen>      cached result, cache TTL
//
// Blood group and location are query-escaped. Invalidate increments the
// counter, which orphans results stored under older generations.
type MatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchCache creates a MatchCache wrapping the given Redis client.
func NewMatchCache(client *redis.Client, ttl time.Duration) *MatchCache {
	if ttl <= 0 {
		ttl = defaultMatchTTL
	}
	return &MatchCache{client: client, ttl: ttl}
}

// Get returns the current generation of key and the result cached for it.
// The bool is false on a miss.
func (m *MatchCache) Get(ctx context.Context, key domain.MatchKey) (*domain.MatchResult, int64, bool, error) {
	gen, err := m.generation(ctx, key)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := m.client.Get(ctx, m.resultKey(key, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, fmt.Errorf("match cache get: %w", err)
	}

	var res domain.MatchResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, gen, false, fmt.Errorf("match cache decode: %w", err)
	}
	return domain.NewMatchResult(res.Donors, res.Hospitals), gen, true, nil
}

// Set stores result under generation gen of key for the cache TTL. A result
// for a generation that has since been invalidated is never read back.
func (m *MatchCache) Set(ctx context.Context, key domain.MatchKey, gen int64, result *domain.MatchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("match cache encode: %w", err)
	}
	if err := m.client.Set(ctx, m.resultKey(key, gen), raw, m.ttl).Err(); err != nil {
		return fmt.Errorf("match cache set: %w", err)
	}
	return nil
}

// Invalidate advances the generation of every given key in one transaction.
func (m *MatchCache) Invalidate(ctx context.Context, keys ...domain.MatchKey) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, m.genKey(k))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("match cache invalidate: %w", err)
	}
	return nil
}

func (m *MatchCache) generation(ctx context.Context, key domain.MatchKey) (int64, error) {
	gen, err := m.client.Get(ctx, m.genKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("match cache generation: %w", err)
	}
	return gen, nil
}

func (m *MatchCache) genKey(k domain.MatchKey) string {
	return fmt.Sprintf("match-gen:%s:%s", url.QueryEscape(k.BloodGroup), url.QueryEscape(k.Location))
}

func (m *MatchCache) resultKey(k domain.MatchKey, gen int64) string {
	return fmt.Sprintf("match:%s:%s:%d", url.QueryEscape(k.BloodGroup), url.QueryEscape(k.Location), gen)
}
