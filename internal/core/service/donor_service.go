package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match-api/internal/api/metrics"
	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

// DonorService implements donor registration, login and profile lookup.
type DonorService struct {
	repo   ports.DonorRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	cache  ports.MatchCache
	log    zerolog.Logger
}

// NewDonorService wires a DonorService. cache may be nil.
func NewDonorService(
	repo ports.DonorRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	cache ports.MatchCache,
	log zerolog.Logger,
) *DonorService {
	return &DonorService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, log: log}
}

// Register stores a new donor and returns a donor claim token.
func (s *DonorService) Register(ctx context.Context, in ports.RegisterDonorInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.BloodGroup == "" || in.Location == "" || in.Password == "" {
		return "", domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, domain.ErrInvalidInput) {
		return "", err
	}
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleDonor), "error").Inc()
		return "", fmt.Errorf("register donor: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Donor{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		BloodGroup:   in.BloodGroup,
		Location:     in.Location,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDonorExists) {
			metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleDonor), "duplicate").Inc()
			return "", err
		}
		metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleDonor), "error").Inc()
		return "", fmt.Errorf("register donor: %w", err)
	}

	invalidateMatches(ctx, s.cache, s.log, created.MatchKey())

	token, err := s.tokens.Issue(domain.DonorPrincipal{ID: created.ID})
	if err != nil {
		return "", fmt.Errorf("register donor: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleDonor), "created").Inc()
	s.log.Info().Str("donor_id", created.ID).Str("blood_group", created.BloodGroup).Msg("donor registered")
	return token, nil
}

// Login verifies the donor's password and issues a claim token.
func (s *DonorService) Login(ctx context.Context, email, password string) (*ports.DonorLogin, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	donor, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleDonor), "not_found").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleDonor), "error").Inc()
		return nil, fmt.Errorf("donor login: %w", err)
	}

	if err := s.hasher.Compare(donor.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleDonor), "invalid_credentials").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleDonor), "error").Inc()
		return nil, fmt.Errorf("donor login: %w", err)
	}

	token, err := s.tokens.Issue(domain.DonorPrincipal{ID: donor.ID})
	if err != nil {
		return nil, fmt.Errorf("donor login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleDonor), "success").Inc()
	donor.PasswordHash = ""
	return &ports.DonorLogin{Token: token, Donor: donor}, nil
}

// Profile returns the donor identified by a claim's subject id.
func (s *DonorService) Profile(ctx context.Context, id string) (*domain.Donor, error) {
	donor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	donor.PasswordHash = ""
	return donor, nil
}
