package ports

import (
	"context"
	"time"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// PasswordHasher hashes and verifies passwords. Verify fails closed.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints signed, time-limited bearer tokens.
type TokenIssuer interface {
	Issue(subjectID uint64, role domain.Role) (string, error)
}

// TokenVerifier checks signature, structure and expiry of a token. Failures
// are *domain.TokenError values.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// RevocationStore is a deny-list of token ids that expire on their own.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionVerifier is the single verified-claims path shared by the API gate
// and the edge gate: cryptographic verification plus revocation.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}
