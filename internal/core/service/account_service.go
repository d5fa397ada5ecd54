package service

import (
	"context"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

type accountService struct {
	accounts ports.AccountRepository
}

// NewAccountService returns an AccountService implementation.
func NewAccountService(accounts ports.AccountRepository) ports.AccountService {
	return &accountService{accounts: accounts}
}

// GetAccount returns the public view of account id.
func (s *accountService) GetAccount(ctx context.Context, id uint64) (*domain.AccountSummary, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := account.Summary()
	return &summary, nil
}
