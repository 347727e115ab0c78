package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the signed payload: {id, role, isAdmin?} plus registered claims.
type Claims struct {
	ID      string      `json:"id"`
	Role    domain.Role `json:"role"`
	IsAdmin *bool       `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 claim tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for p that expires after the configured TTL.
func (s *Service) Issue(p domain.Principal) (string, error) {
	now := s.now()
	claims := Claims{
		ID:   p.SubjectID(),
		Role: p.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.SubjectID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if h, ok := p.(domain.HospitalPrincipal); ok {
		isAdmin := h.IsAdmin
		claims.IsAdmin = &isAdmin
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and decodes the principal.
// Any failure is reported as domain.ErrUnauthenticated.
func (s *Service) Verify(tokenStr string) (domain.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, domain.ErrUnauthenticated
	}

	switch claims.Role {
	case domain.RoleDonor:
		return domain.DonorPrincipal{ID: claims.ID}, nil
	case domain.RoleHospital:
		return domain.HospitalPrincipal{ID: claims.ID, IsAdmin: claims.IsAdmin != nil && *claims.IsAdmin}, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthenticated, claims.Role)
	}
}
