package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/infrastructure/crypto"
	"github.com/bloodconnect/donor-match-api/internal/infrastructure/token"
)

const testSecret = "test-secret"

func newTestHasher() *crypto.BcryptHasher { return crypto.NewBcryptHasher(bcrypt.MinCost) }

func newTestTokens() *token.Service { return token.NewService(testSecret, time.Hour) }

// ---------------------------------------------------------------------------
// In-memory donor repository. Email uniqueness mirrors the Mongo unique index.
// ---------------------------------------------------------------------------

type stubDonorRepo struct {
	mu       sync.Mutex
	byEmail  map[string]*domain.Donor
	seq      int
	creates  int
	findErr  error
	matchErr error
}

func newStubDonorRepo() *stubDonorRepo {
	return &stubDonorRepo{byEmail: make(map[string]*domain.Donor)}
}

func (r *stubDonorRepo) Create(_ context.Context, d *domain.Donor) (*domain.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if _, exists := r.byEmail[d.Email]; exists {
		return nil, domain.ErrDonorExists
	}
	r.seq++
	clone := *d
	clone.ID = fmt.Sprintf("donor-%d", r.seq)
	r.byEmail[d.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubDonorRepo) FindByEmail(_ context.Context, email string) (*domain.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	d, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrDonorNotFound
	}
	clone := *d
	return &clone, nil
}

// FindByID mirrors the Mongo projection: the hash is never returned.
func (r *stubDonorRepo) FindByID(_ context.Context, id string) (*domain.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.byEmail {
		if d.ID == id {
			clone := *d
			clone.PasswordHash = ""
			return &clone, nil
		}
	}
	return nil, domain.ErrDonorNotFound
}

func (r *stubDonorRepo) FindMatching(_ context.Context, key domain.MatchKey) ([]domain.Donor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.matchErr != nil {
		return nil, r.matchErr
	}
	var out []domain.Donor
	for _, d := range r.byEmail {
		if d.BloodGroup == key.BloodGroup && d.Location == key.Location {
			out = append(out, *d)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory hospital repository.
// ---------------------------------------------------------------------------

type stubHospitalRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Hospital
	seq     int
	creates int

	// cityOnly skips the blood-type filter, returning every hospital in the city.
	cityOnly bool
	// beforeMatch runs at the start of FindMatching, outside the lock.
	beforeMatch func()
}

func newStubHospitalRepo() *stubHospitalRepo {
	return &stubHospitalRepo{byEmail: make(map[string]*domain.Hospital)}
}

func (r *stubHospitalRepo) Create(_ context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if _, exists := r.byEmail[h.Email]; exists {
		return nil, domain.ErrHospitalExists
	}
	r.seq++
	clone := *h
	clone.ID = fmt.Sprintf("hospital-%d", r.seq)
	r.byEmail[h.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubHospitalRepo) FindByEmail(_ context.Context, email string) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrHospitalNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *stubHospitalRepo) FindByID(_ context.Context, id string) (*domain.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.byEmail {
		if h.ID == id {
			clone := *h
			clone.PasswordHash = ""
			return &clone, nil
		}
	}
	return nil, domain.ErrHospitalNotFound
}

func (r *stubHospitalRepo) FindMatching(_ context.Context, key domain.MatchKey) ([]domain.Hospital, error) {
	if r.beforeMatch != nil {
		r.beforeMatch()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Hospital
	for _, h := range r.byEmail {
		if h.City == key.Location && (r.cityOnly || h.Stocks(key.BloodGroup)) {
			out = append(out, *h)
		}
	}
	return out, nil
}

// setAdmin flips the stored admin flag the way an operator would in the database.
func (r *stubHospitalRepo) setAdmin(email string, admin bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[email].IsAdmin = admin
}

// ---------------------------------------------------------------------------
// Recording match cache with per-key generations, like the Redis cache.
// ---------------------------------------------------------------------------

type cacheSlot struct {
	key domain.MatchKey
	gen int64
}

type stubMatchCache struct {
	mu          sync.Mutex
	entries     map[cacheSlot]*domain.MatchResult
	gens        map[domain.MatchKey]int64
	invalidated []domain.MatchKey
	gets        int
	getErr      error
	invErr      error
}

func newStubMatchCache() *stubMatchCache {
	return &stubMatchCache{
		entries: make(map[cacheSlot]*domain.MatchResult),
		gens:    make(map[domain.MatchKey]int64),
	}
}

func (c *stubMatchCache) Get(_ context.Context, key domain.MatchKey) (*domain.MatchResult, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, 0, false, c.getErr
	}
	gen := c.gens[key]
	r, ok := c.entries[cacheSlot{key, gen}]
	return r, gen, ok, nil
}

func (c *stubMatchCache) Set(_ context.Context, key domain.MatchKey, gen int64, r *domain.MatchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheSlot{key, gen}] = r
	return nil
}

func (c *stubMatchCache) Invalidate(_ context.Context, keys ...domain.MatchKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, keys...)
	if c.invErr != nil {
		return c.invErr
	}
	for _, k := range keys {
		c.gens[k]++
	}
	return nil
}

// current returns the result served for key right now, if any.
func (c *stubMatchCache) current(key domain.MatchKey) *domain.MatchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[cacheSlot{key, c.gens[key]}]
}

var errStoreDown = errors.New("store unavailable")
