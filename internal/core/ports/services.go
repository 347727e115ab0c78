package ports

import (
	"context"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

// RegisterDonorInput carries a validated donor registration.
type RegisterDonorInput struct {
	Name       string
	Email      string
	Phone      string
	BloodGroup string
	Location   string
	Password   string
}

// RegisterHospitalInput carries a validated hospital registration.
type RegisterHospitalInput struct {
	HospitalName string
	Email        string
	Phone        string
	Address      string
	City         string
	Blood        []domain.BloodStock
	Password     string
}

// DonorLogin is returned by a successful donor login.
type DonorLogin struct {
	Token string
	Donor *domain.Donor
}

// HospitalLogin is returned by a successful hospital login.
type HospitalLogin struct {
	Token    string
	Hospital *domain.Hospital
}

// DonorService defines donor account use cases.
type DonorService interface {
	Register(ctx context.Context, in RegisterDonorInput) (string, error)
	Login(ctx context.Context, email, password string) (*DonorLogin, error)
	Profile(ctx context.Context, id string) (*domain.Donor, error)
}

// HospitalService defines hospital account use cases.
type HospitalService interface {
	Register(ctx context.Context, in RegisterHospitalInput) (string, error)
	Login(ctx context.Context, email, password string) (*HospitalLogin, error)
	Profile(ctx context.Context, id string) (*domain.Hospital, error)
}

// MatchService answers blood availability queries.
type MatchService interface {
	FindBlood(ctx context.Context, key domain.MatchKey) (*domain.MatchResult, error)
}

// MatchCache stores blood-match results between registrations.
//
// Every key carries a generation that Invalidate advances. Results are stored
// against the generation read before the store was queried, so a result
// computed concurrently with a registration is never served after it.
type MatchCache interface {
	// Get returns the current generation of key and, when present, the result
	// cached for that generation. The generation is valid on a miss.
	Get(ctx context.Context, key domain.MatchKey) (result *domain.MatchResult, gen int64, ok bool, err error)
	Set(ctx context.Context, key domain.MatchKey, gen int64, result *domain.MatchResult) error
	Invalidate(ctx context.Context, keys ...domain.MatchKey) error
}
