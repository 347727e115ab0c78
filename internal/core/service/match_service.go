package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match-api/internal/api/metrics"
	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

type matchService struct {
	donors    ports.DonorRepository
	hospitals ports.HospitalRepository
	cache     ports.MatchCache
	log       zerolog.Logger
}

// NewMatchService returns a MatchService reading through cache when it is non-nil.
func NewMatchService(
	donors ports.DonorRepository,
	hospitals ports.HospitalRepository,
	cache ports.MatchCache,
	log zerolog.Logger,
) ports.MatchService {
	return &matchService{donors: donors, hospitals: hospitals, cache: cache, log: log}
}

// FindBlood returns donors with the blood group in the location and hospitals
// in that city listing the blood type. An incomplete key matches nothing.
// Hospitals the store returns without an inventory entry for the type are
// dropped.
func (s *matchService) FindBlood(ctx context.Context, key domain.MatchKey) (*domain.MatchResult, error) {
	if key.Empty() {
		return domain.NewMatchResult(nil, nil), nil
	}

	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		cached, g, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.MatchCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("blood_group", key.BloodGroup).Msg("match cache read failed, querying store")
		case ok:
			metrics.MatchCacheTotal.WithLabelValues("hit").Inc()
			recordSearch(cached)
			return cached, nil
		default:
			metrics.MatchCacheTotal.WithLabelValues("miss").Inc()
			gen, cacheable = g, true
		}
	}

	donors, err := s.donors.FindMatching(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find blood: %w", err)
	}
	found, err := s.hospitals.FindMatching(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find blood: %w", err)
	}

	for i := range donors {
		donors[i].PasswordHash = ""
	}
	hospitals := found[:0]
	for _, h := range found {
		if !h.Stocks(key.BloodGroup) {
			continue
		}
		h.PasswordHash = ""
		hospitals = append(hospitals, h)
	}
	result := domain.NewMatchResult(donors, hospitals)

	// gen was read before the store queries; a registration since then has
	// moved the key on and this entry is never served.
	if cacheable {
		if err := s.cache.Set(ctx, key, gen, result); err != nil {
			s.log.Warn().Err(err).Str("blood_group", key.BloodGroup).Msg("failed to cache match result")
		}
	}

	recordSearch(result)
	s.log.Debug().
		Str("blood_group", key.BloodGroup).
		Str("location", key.Location).
		Int("donors", len(result.Donors)).
		Int("hospitals", len(result.Hospitals)).
		Msg("blood search")
	return result, nil
}

func recordSearch(r *domain.MatchResult) {
	if r.Found {
		metrics.BloodSearchesTotal.WithLabelValues("found").Inc()
		return
	}
	metrics.BloodSearchesTotal.WithLabelValues("not_found").Inc()
}

// invalidateMatches moves on the generation of every key a new registration
// may have changed.
// Failures are logged; the TTL bounds how long a stale result can live.
func invalidateMatches(ctx context.Context, cache ports.MatchCache, log zerolog.Logger, keys ...domain.MatchKey) {
	if cache == nil || len(keys) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, keys...); err != nil {
		log.Warn().Err(err).Int("keys", len(keys)).Msg("failed to invalidate match cache")
	}
}
