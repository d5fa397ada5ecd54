package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/api/metrics"
	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
	"github.com/hirehive/hirehive-api/internal/pkg/validation"
)

// dummyPassword is hashed once so that signin with an unknown email still
// pays for a bcrypt comparison.
const dummyPassword = "hirehive-timing-equaliser"

type authService struct {
	accounts    ports.AccountRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	verifier    ports.TokenVerifier
	revocations ports.RevocationStore
	activity    ports.ActivityRecorder
	validate    *validation.Validator
	log         zerolog.Logger
	now         func() time.Time
	dummyHash   string
}

// NewAuthService returns an AuthService implementation. revocations may be nil,
// in which case logout only acknowledges the request.
func NewAuthService(
	accounts ports.AccountRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	verifier ports.TokenVerifier,
	revocations ports.RevocationStore,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) ports.AuthService {
	s := &authService{
		accounts:    accounts,
		hasher:      hasher,
		tokens:      tokens,
		verifier:    verifier,
		revocations: revocations,
		activity:    activity,
		validate:    validation.New(),
		log:         log,
		now:         time.Now,
	}
	if h, err := hasher.Hash(dummyPassword); err == nil {
		s.dummyHash = h
	}
	return s
}

// Signup validates the form, rejects known emails and persists the account
// together with its role profile in one transaction. No token is issued.
func (s *authService) Signup(ctx context.Context, in ports.SignupInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	if err := s.validate.Struct(in); err != nil {
		metrics.SignupsTotal.WithLabelValues(roleLabel(in.Role), "invalid").Inc()
		return domain.NewValidationError(err.Error())
	}
	role := domain.Role(in.Role)

	exists, err := s.accounts.ExistsByEmail(ctx, in.Email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(role.String(), "error").Inc()
		return err
	}
	if exists {
		metrics.SignupsTotal.WithLabelValues(role.String(), "duplicate").Inc()
		return domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(role.String(), "error").Inc()
		return fmt.Errorf("signup: %w", err)
	}

	now := s.now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.CreateWithProfile(ctx, account, profileFrom(in))
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrDuplicateEmail) {
			result = "duplicate"
		}
		metrics.SignupsTotal.WithLabelValues(role.String(), result).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues(role.String(), "created").Inc()
	s.log.Info().Uint64("user_id", created.ID).Str("role", role.String()).Msg("account created")
	s.activity.Record(domain.ActivityEntry{
		UserID:      created.ID,
		Action:      domain.ActionSignup,
		Description: "account registered as " + role.String(),
		IPAddress:   in.IPAddress,
		Timestamp:   now,
	})
	return nil
}

// Signin exchanges credentials for a token. Unknown email and wrong password
// produce the same ErrInvalidCredentials.
func (s *authService) Signin(ctx context.Context, in ports.SigninInput) (*ports.SigninResult, error) {
	if err := s.validate.Struct(in); err != nil {
		metrics.SigninsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.NewValidationError(err.Error())
	}

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		s.hasher.Verify(in.Password, s.dummyHash)
		return nil, s.rejectSignin(0, in.IPAddress)
	case err != nil:
		metrics.SigninsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if !s.hasher.Verify(in.Password, account.PasswordHash) {
		return nil, s.rejectSignin(account.ID, in.IPAddress)
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("signin: issue token: %w", err)
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	s.activity.Record(domain.ActivityEntry{
		UserID:      account.ID,
		Action:      domain.ActionSignin,
		Description: "signed in",
		IPAddress:   in.IPAddress,
		Timestamp:   s.now().UTC(),
	})
	return &ports.SigninResult{Token: token, User: account.Summary()}, nil
}

func (s *authService) rejectSignin(userID uint64, ip string) error {
	metrics.SigninsTotal.WithLabelValues("rejected").Inc()
	s.activity.Record(domain.ActivityEntry{
		UserID:      userID,
		Action:      domain.ActionSigninFailed,
		Description: "invalid credentials",
		IPAddress:   ip,
		Timestamp:   s.now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

// Logout revokes the presented token until its natural expiry when a
// deny-list is configured. Missing or invalid tokens are acknowledged as-is.
func (s *authService) Logout(ctx context.Context, in ports.LogoutInput) error {
	if in.Token == "" {
		metrics.LogoutsTotal.WithLabelValues("false").Inc()
		return nil
	}

	id, err := s.verifier.Verify(in.Token)
	if err != nil {
		reason, _ := domain.TokenFailureOf(err)
		s.log.Debug().Str("reason", string(reason)).Msg("logout with unusable token")
		metrics.LogoutsTotal.WithLabelValues("false").Inc()
		return nil
	}

	revoked := false
	if s.revocations != nil && id.TokenID != "" {
		if err := s.revocations.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
			return domain.NewStoreError("revoke token", err)
		}
		revoked = true
	}

	metrics.LogoutsTotal.WithLabelValues(strconv.FormatBool(revoked)).Inc()
	s.activity.Record(domain.ActivityEntry{
		UserID:      id.SubjectID,
		Action:      domain.ActionLogout,
		Description: "signed out",
		IPAddress:   in.IPAddress,
		Timestamp:   s.now().UTC(),
	})
	return nil
}

func profileFrom(in ports.SignupInput) domain.Profile {
	return domain.Profile{
		CompanyName:   in.CompanyName,
		Website:       in.Website,
		Description:   in.Description,
		Resume:        in.Resume,
		Education:     in.Education,
		Experience:    in.Experience,
		AdminLevel:    in.AdminLevel,
		ContactNumber: in.ContactNumber,
	}
}

func roleLabel(role string) string {
	if domain.Role(role).Valid() {
		return role
	}
	return "unknown"
}
