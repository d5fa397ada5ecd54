package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/api/metrics"
	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

type sessionVerifier struct {
	tokens      ports.TokenVerifier
	revocations ports.RevocationStore
	log         zerolog.Logger
}

// NewSessionVerifier combines signature checks with the revocation deny-list.
// revocations may be nil to disable revocation.
func NewSessionVerifier(tokens ports.TokenVerifier, revocations ports.RevocationStore, log zerolog.Logger) ports.SessionVerifier {
	return &sessionVerifier{tokens: tokens, revocations: revocations, log: log}
}

// Verify returns the identity carried by token. A deny-list that cannot be
// reached rejects the token.
func (v *sessionVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	id, err := v.tokens.Verify(token)
	if err != nil {
		reason, _ := domain.TokenFailureOf(err)
		metrics.TokenVerificationsTotal.WithLabelValues(string(reason)).Inc()
		return nil, err
	}

	if v.revocations != nil && id.TokenID != "" {
		revoked, err := v.revocations.IsRevoked(ctx, id.TokenID)
		if err != nil {
			v.log.Error().Err(err).Msg("revocation check failed, rejecting token")
			metrics.TokenVerificationsTotal.WithLabelValues(string(domain.TokenRevoked)).Inc()
			return nil, domain.NewTokenError(domain.TokenRevoked, err)
		}
		if revoked {
			metrics.TokenVerificationsTotal.WithLabelValues(string(domain.TokenRevoked)).Inc()
			return nil, domain.NewTokenError(domain.TokenRevoked, nil)
		}
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return id, nil
}
