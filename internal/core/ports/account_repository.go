package ports

import (
	"context"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// AccountRepository defines persistence for accounts and their role profiles.
type AccountRepository interface {
	// ExistsByEmail reports whether an account already uses email (exact match).
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CreateWithProfile inserts the account and exactly one profile row for its
	// role in a single transaction. Either both rows exist afterwards or neither.
	CreateWithProfile(ctx context.Context, account *domain.Account, profile domain.Profile) (*domain.Account, error)
	// FindByEmail returns the account joined with its role-specific data, or
	// domain.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id uint64) (*domain.Account, error)
}
