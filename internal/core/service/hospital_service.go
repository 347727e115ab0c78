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

// HospitalService implements hospital registration, login and profile lookup.
type HospitalService struct {
	repo   ports.HospitalRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	cache  ports.MatchCache
	log    zerolog.Logger
}

// NewHospitalService wires a HospitalService. cache may be nil.
func NewHospitalService(
	repo ports.HospitalRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	cache ports.MatchCache,
	log zerolog.Logger,
) *HospitalService {
	return &HospitalService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, log: log}
}

// Register stores a new hospital with its initial inventory. New hospitals
// are never admins; the flag can only be set directly in the database.
func (s *HospitalService) Register(ctx context.Context, in ports.RegisterHospitalInput) (string, error) {
	if in.HospitalName == "" || in.Email == "" || in.Phone == "" || in.Address == "" || in.City == "" || in.Password == "" {
		return "", domain.ErrInvalidInput
	}
	if err := validateInventory(in.Blood); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, domain.ErrInvalidInput) {
		return "", err
	}
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleHospital), "error").Inc()
		return "", fmt.Errorf("register hospital: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Hospital{
		HospitalName: in.HospitalName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		Blood:        in.Blood,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrHospitalExists) {
			metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleHospital), "duplicate").Inc()
			return "", err
		}
		metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleHospital), "error").Inc()
		return "", fmt.Errorf("register hospital: %w", err)
	}

	invalidateMatches(ctx, s.cache, s.log, created.MatchKeys()...)

	token, err := s.tokens.Issue(domain.HospitalPrincipal{ID: created.ID, IsAdmin: created.IsAdmin})
	if err != nil {
		return "", fmt.Errorf("register hospital: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.RoleHospital), "created").Inc()
	s.log.Info().Str("hospital_id", created.ID).Str("city", created.City).Int("blood_types", len(created.Blood)).Msg("hospital registered")
	return token, nil
}

// Login verifies the hospital's password. The issued token carries the
// stored admin flag.
func (s *HospitalService) Login(ctx context.Context, email, password string) (*ports.HospitalLogin, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hospital, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrHospitalNotFound) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleHospital), "not_found").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleHospital), "error").Inc()
		return nil, fmt.Errorf("hospital login: %w", err)
	}

	if err := s.hasher.Compare(hospital.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(domain.RoleHospital), "invalid_credentials").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleHospital), "error").Inc()
		return nil, fmt.Errorf("hospital login: %w", err)
	}

	token, err := s.tokens.Issue(domain.HospitalPrincipal{ID: hospital.ID, IsAdmin: hospital.IsAdmin})
	if err != nil {
		return nil, fmt.Errorf("hospital login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleHospital), "success").Inc()
	hospital.PasswordHash = ""
	return &ports.HospitalLogin{Token: token, Hospital: hospital}, nil
}

// Profile returns the hospital identified by a claim's subject id.
func (s *HospitalService) Profile(ctx context.Context, id string) (*domain.Hospital, error) {
	hospital, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hospital.PasswordHash = ""
	return hospital, nil
}

func validateInventory(blood []domain.BloodStock) error {
	if len(blood) == 0 {
		return domain.ErrInvalidBlood
	}
	for _, b := range blood {
		if b.Type == "" || b.Units < 0 {
			return domain.ErrInvalidBlood
		}
	}
	return nil
}
