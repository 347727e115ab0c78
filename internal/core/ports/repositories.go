package ports

import (
	"context"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

// DonorRepository defines persistence operations for donors.
type DonorRepository interface {
	// Create inserts a donor and returns it with its assigned ID.
	// A duplicate email yields domain.ErrDonorExists.
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	// FindByEmail returns the donor including its password hash.
	FindByEmail(ctx context.Context, email string) (*domain.Donor, error)
	// FindByID returns the donor with the password hash projected out.
	FindByID(ctx context.Context, id string) (*domain.Donor, error)
	// FindMatching returns donors whose blood group and location equal the key.
	FindMatching(ctx context.Context, key domain.MatchKey) ([]domain.Donor, error)
}

// HospitalRepository defines persistence operations for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) (*domain.Hospital, error)
	FindByEmail(ctx context.Context, email string) (*domain.Hospital, error)
	FindByID(ctx context.Context, id string) (*domain.Hospital, error)
	// FindMatching returns hospitals in key.Location whose inventory lists key.BloodGroup.
	FindMatching(ctx context.Context, key domain.MatchKey) ([]domain.Hospital, error)
}
