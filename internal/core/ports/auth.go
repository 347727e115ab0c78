package ports

import "github.com/bloodconnect/donor-match-api/internal/core/domain"

// PasswordHasher is a one-way credential hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns domain.ErrInvalidCredentials when password does not match hash.
	Compare(hash, password string) error
}

// TokenIssuer signs time-limited claim tokens.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}

// TokenVerifier validates claim tokens and decodes the caller identity.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}
