package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

type matchFixture struct {
	donors    *stubDonorRepo
	hospitals *stubHospitalRepo
}

func newMatchFixture(t *testing.T) matchFixture {
	t.Helper()
	f := matchFixture{donors: newStubDonorRepo(), hospitals: newStubHospitalRepo()}
	ctx := context.Background()

	donors := []domain.Donor{
		{Name: "Ann", Email: "ann@x", BloodGroup: "O+", Location: "Metropolis", PasswordHash: "h1"},
		{Name: "Ben", Email: "ben@x", BloodGroup: "O+", Location: "Gotham", PasswordHash: "h2"},
		{Name: "Cat", Email: "cat@x", BloodGroup: "A-", Location: "Metropolis", PasswordHash: "h3"},
	}
	for i := range donors {
		if _, err := f.donors.Create(ctx, &donors[i]); err != nil {
			t.Fatalf("seed donor: %v", err)
		}
	}

	hospitals := []domain.Hospital{
		{HospitalName: "Zero Stock", Email: "zero@x", City: "Metropolis", Blood: []domain.BloodStock{{Type: "O+", Units: 0}}, PasswordHash: "h4"},
		{HospitalName: "Other Type", Email: "other@x", City: "Metropolis", Blood: []domain.BloodStock{{Type: "B+", Units: 9}}, PasswordHash: "h5"},
		{HospitalName: "Other City", Email: "city@x", City: "Gotham", Blood: []domain.BloodStock{{Type: "O+", Units: 9}}, PasswordHash: "h6"},
	}
	for i := range hospitals {
		if _, err := f.hospitals.Create(ctx, &hospitals[i]); err != nil {
			t.Fatalf("seed hospital: %v", err)
		}
	}
	return f
}

func TestMatchService_FindBlood_Matches(t *testing.T) {
	f := newMatchFixture(t)
	svc := NewMatchService(f.donors, f.hospitals, nil, zerolog.Nop())

	res, err := svc.FindBlood(context.Background(), domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"})
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if !res.Found {
		t.Fatalf("expected found")
	}
	if len(res.Donors) != 1 || res.Donors[0].Name != "Ann" {
		t.Fatalf("unexpected donors: %+v", res.Donors)
	}
	// A zero-unit entry still counts as a match.
	if len(res.Hospitals) != 1 || res.Hospitals[0].HospitalName != "Zero Stock" {
		t.Fatalf("unexpected hospitals: %+v", res.Hospitals)
	}
	for _, d := range res.Donors {
		if d.PasswordHash != "" {
			t.Fatalf("donor password hash leaked")
		}
	}
	for _, h := range res.Hospitals {
		if h.PasswordHash != "" {
			t.Fatalf("hospital password hash leaked")
		}
	}
}

func TestMatchService_FindBlood_HospitalOnly(t *testing.T) {
	f := newMatchFixture(t)
	svc := NewMatchService(f.donors, f.hospitals, nil, zerolog.Nop())

	res, err := svc.FindBlood(context.Background(), domain.MatchKey{BloodGroup: "B+", Location: "Metropolis"})
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if !res.Found || len(res.Donors) != 0 || len(res.Hospitals) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMatchService_FindBlood_NoMatch(t *testing.T) {
	f := newMatchFixture(t)
	svc := NewMatchService(f.donors, f.hospitals, nil, zerolog.Nop())

	for _, key := range []domain.MatchKey{
		{BloodGroup: "AB-", Location: "Metropolis"},
		{BloodGroup: "O+", Location: "Smallville"},
		{BloodGroup: "", Location: "Metropolis"},
		{BloodGroup: "O+", Location: ""},
	} {
		res, err := svc.FindBlood(context.Background(), key)
		if err != nil {
			t.Fatalf("%+v: FindBlood error: %v", key, err)
		}
		if res.Found || res.Donors == nil || res.Hospitals == nil || len(res.Donors) != 0 || len(res.Hospitals) != 0 {
			t.Fatalf("%+v: expected empty not-found result, got %+v", key, res)
		}
	}
}

func TestMatchService_FindBlood_StoreError(t *testing.T) {
	f := newMatchFixture(t)
	f.donors.matchErr = errStoreDown
	svc := NewMatchService(f.donors, f.hospitals, nil, zerolog.Nop())

	if _, err := svc.FindBlood(context.Background(), domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"}); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestMatchService_FindBlood_ReadsThroughCache(t *testing.T) {
	f := newMatchFixture(t)
	cache := newStubMatchCache()
	svc := NewMatchService(f.donors, f.hospitals, cache, zerolog.Nop())
	key := domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"}

	first, err := svc.FindBlood(context.Background(), key)
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if cache.current(key) == nil {
		t.Fatalf("result not cached")
	}

	// The store now fails; a cache hit must not touch it.
	f.donors.matchErr = errStoreDown
	second, err := svc.FindBlood(context.Background(), key)
	if err != nil {
		t.Fatalf("expected cache hit, got %v", err)
	}
	if second != first {
		t.Fatalf("expected cached result")
	}
}

func TestMatchService_FindBlood_CacheErrorFallsBack(t *testing.T) {
	f := newMatchFixture(t)
	cache := newStubMatchCache()
	cache.getErr = errors.New("redis down")
	svc := NewMatchService(f.donors, f.hospitals, cache, zerolog.Nop())

	res, err := svc.FindBlood(context.Background(), domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"})
	if err != nil {
		t.Fatalf("expected store fallback, got %v", err)
	}
	if !res.Found {
		t.Fatalf("expected found from store")
	}
}

func TestMatchService_RegistrationRefreshesCachedResult(t *testing.T) {
	donors, hospitals := newStubDonorRepo(), newStubHospitalRepo()
	cache := newStubMatchCache()
	match := NewMatchService(donors, hospitals, cache, zerolog.Nop())
	donorSvc := NewDonorService(donors, newTestHasher(), newTestTokens(), cache, zerolog.Nop())
	key := domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"}

	res, _ := match.FindBlood(context.Background(), key)
	if res.Found {
		t.Fatalf("expected empty store")
	}

	if _, err := donorSvc.Register(context.Background(), validDonor("new@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, _ = match.FindBlood(context.Background(), key)
	if !res.Found || len(res.Donors) != 1 {
		t.Fatalf("expected the new donor after registration, got %+v", res)
	}
}

// A registration that lands while a search is reading the store must be
// visible to the next search, even though the slower search caches last.
func TestMatchService_RegistrationDuringSearchIsNotMasked(t *testing.T) {
	donors, hospitals := newStubDonorRepo(), newStubHospitalRepo()
	cache := newStubMatchCache()
	match := NewMatchService(donors, hospitals, cache, zerolog.Nop())
	donorSvc := NewDonorService(donors, newTestHasher(), newTestTokens(), cache, zerolog.Nop())
	key := domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"}

	paused, resume := make(chan struct{}), make(chan struct{})
	var once sync.Once
	hospitals.beforeMatch = func() {
		once.Do(func() {
			close(paused)
			<-resume
		})
	}

	type outcome struct {
		res *domain.MatchResult
		err error
	}
	slow := make(chan outcome, 1)
	go func() {
		res, err := match.FindBlood(context.Background(), key)
		slow <- outcome{res, err}
	}()

	// The slow search has read the donors (none yet) and is stalled on hospitals.
	<-paused
	if _, err := donorSvc.Register(context.Background(), validDonor("late@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	close(resume)

	first := <-slow
	if first.err != nil {
		t.Fatalf("slow search failed: %v", first.err)
	}
	if first.res.Found {
		t.Fatalf("slow search read the donors before the registration, got %+v", first.res)
	}

	res, err := match.FindBlood(context.Background(), key)
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if !res.Found || len(res.Donors) != 1 {
		t.Fatalf("registered donor masked by the slow search's cache entry: %+v", res)
	}
}

func TestMatchService_FindBlood_DropsHospitalsWithoutTheType(t *testing.T) {
	f := newMatchFixture(t)
	f.hospitals.cityOnly = true
	cache := newStubMatchCache()
	svc := NewMatchService(f.donors, f.hospitals, cache, zerolog.Nop())
	key := domain.MatchKey{BloodGroup: "O+", Location: "Metropolis"}

	res, err := svc.FindBlood(context.Background(), key)
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if len(res.Hospitals) != 1 || res.Hospitals[0].HospitalName != "Zero Stock" {
		t.Fatalf("expected only the hospital listing O+, got %+v", res.Hospitals)
	}
	if cached := cache.current(key); cached == nil || len(cached.Hospitals) != 1 {
		t.Fatalf("unexpected cached result: %+v", cached)
	}

	res, err = svc.FindBlood(context.Background(), domain.MatchKey{BloodGroup: "AB-", Location: "Metropolis"})
	if err != nil {
		t.Fatalf("FindBlood error: %v", err)
	}
	if res.Found || res.Hospitals == nil {
		t.Fatalf("expected an empty not-found result, got %+v", res)
	}
}
