package middleware

import (
	"context"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// stubSessions accepts the tokens listed in valid.
type stubSessions struct {
	valid map[string]*domain.Identity
	calls int
}

func newStubSessions() *stubSessions {
	return &stubSessions{valid: map[string]*domain.Identity{
		"admin-token":  {SubjectID: 1, Role: domain.RoleAdmin, TokenID: "a"},
		"vendor-token": {SubjectID: 2, Role: domain.RoleVendor, TokenID: "v"},
		"seeker-token": {SubjectID: 3, Role: domain.RoleJobSeeker, TokenID: "j"},
	}}
}

func (s *stubSessions) Verify(_ context.Context, token string) (*domain.Identity, error) {
	s.calls++
	if token == "" {
		return nil, domain.NewTokenError(domain.TokenMissing, nil)
	}
	if token == "expired-token" {
		return nil, domain.NewTokenError(domain.TokenExpired, nil)
	}
	id, ok := s.valid[token]
	if !ok {
		return nil, domain.NewTokenError(domain.TokenMalformed, nil)
	}
	clone := *id
	return &clone, nil
}
