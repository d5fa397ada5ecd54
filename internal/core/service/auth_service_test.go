package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

type authFixture struct {
	repo     *stubAccountRepo
	hasher   *stubHasher
	tokens   *stubTokens
	revoked  *stubRevocations
	activity *recordingActivity
	svc      ports.AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		repo:     newStubAccountRepo(),
		hasher:   &stubHasher{},
		tokens:   &stubTokens{},
		revoked:  newStubRevocations(),
		activity: &recordingActivity{},
	}
	f.svc = NewAuthService(f.repo, f.hasher, f.tokens, f.tokens, f.revoked, f.activity, zerolog.Nop())
	return f
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
		Role:     "job_seeker",
		Resume:   "cv.pdf",
	}
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	f := newAuthFixture()

	if err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	stored, ok := f.repo.accounts["ana@example.com"]
	if !ok {
		t.Fatal("expected account to be stored")
	}
	if stored.PasswordHash == "secret1" || stored.PasswordHash != "hashed:secret1" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}
	if stored.Role != domain.RoleJobSeeker {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
	if got := f.repo.profiles[stored.ID].Resume; got != "cv.pdf" {
		t.Fatalf("expected resume in profile, got %q", got)
	}
	if len(f.tokens.issued) != 0 {
		t.Fatal("signup must not issue a token")
	}
	if a := f.activity.actions(); len(a) != 1 || a[0] != domain.ActionSignup {
		t.Fatalf("expected signup activity, got %v", a)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.SignupInput)
		want   string
	}{
		{"missing name", func(in *ports.SignupInput) { in.Name = "  " }, "name is required"},
		{"bad email", func(in *ports.SignupInput) { in.Email = "not-an-email" }, "email must be a valid email"},
		{"short password", func(in *ports.SignupInput) { in.Password = "12345" }, "password must be at least 6"},
		{"unknown role", func(in *ports.SignupInput) { in.Role = "superuser" }, "role must be one of"},
		{"vendor without company", func(in *ports.SignupInput) { in.Role = "vendor" }, "company_name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture()
			in := validSignup()
			tc.mutate(&in)

			err := f.svc.Signup(context.Background(), in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected message containing %q, got %q", tc.want, err.Error())
			}
			if len(f.repo.calls) != 0 {
				t.Fatalf("expected no store access, got %v", f.repo.calls)
			}
		})
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	f := newAuthFixture()
	if err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	f.repo.calls = nil
	f.hasher.hashErr = errors.New("must not hash")

	err := f.svc.Signup(context.Background(), validSignup())
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(f.repo.calls) != 1 || f.repo.calls[0] != "exists" {
		t.Fatalf("expected only the existence check, got %v", f.repo.calls)
	}
	if len(f.repo.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(f.repo.accounts))
	}
}

func TestAuthService_Signup_VendorProfile(t *testing.T) {
	f := newAuthFixture()
	in := validSignup()
	in.Role = "vendor"
	in.CompanyName = " Acme "
	in.Website = "https://acme.test"

	if err := f.svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	p := f.repo.profiles[f.repo.accounts[in.Email].ID]
	if p.CompanyName != "Acme" || p.Website != "https://acme.test" {
		t.Fatalf("unexpected vendor profile: %+v", p)
	}
}

func TestAuthService_Signup_StoreFailure(t *testing.T) {
	f := newAuthFixture()
	f.repo.createErr = domain.NewStoreError("create account", errors.New("deadlock"))

	err := f.svc.Signup(context.Background(), validSignup())
	if !errors.Is(err, domain.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if len(f.activity.actions()) != 0 {
		t.Fatal("expected no activity on failed signup")
	}
}

// ---------------------------------------------------------------------------
// Signin
// ---------------------------------------------------------------------------

func seedAccount(t *testing.T, f *authFixture, role domain.Role) *domain.Account {
	t.Helper()
	data := "Acme"
	a, err := f.repo.CreateWithProfile(context.Background(), &domain.Account{
		Name:             "Vera",
		Email:            "vera@example.com",
		PasswordHash:     "hashed:secret1",
		Role:             role,
		RoleSpecificData: &data,
	}, domain.Profile{CompanyName: data})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return a
}

func TestAuthService_Signin_Success(t *testing.T) {
	f := newAuthFixture()
	seeded := seedAccount(t, f, domain.RoleVendor)

	res, err := f.svc.Signin(context.Background(), ports.SigninInput{Email: "vera@example.com", Password: "secret1", IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Signin returned error: %v", err)
	}
	if res.Token != "token-vendor" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if res.User.ID != seeded.ID || res.User.Role != domain.RoleVendor {
		t.Fatalf("unexpected summary: %+v", res.User)
	}
	if res.User.RoleSpecificData == nil || *res.User.RoleSpecificData != "Acme" {
		t.Fatalf("expected role specific data, got %v", res.User.RoleSpecificData)
	}
	if len(f.tokens.issued) != 1 || f.tokens.issued[0].Role != domain.RoleVendor {
		t.Fatalf("expected one vendor token, got %+v", f.tokens.issued)
	}
	entries := f.activity.entries
	if len(entries) != 1 || entries[0].Action != domain.ActionSignin || entries[0].IPAddress != "10.0.0.1" {
		t.Fatalf("unexpected activity: %+v", entries)
	}
}

func TestAuthService_Signin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	f := newAuthFixture()
	seedAccount(t, f, domain.RoleAdmin)
	verifiesBefore := f.hasher.verifies

	_, errUnknown := f.svc.Signin(context.Background(), ports.SigninInput{Email: "nobody@example.com", Password: "secret1"})
	_, errWrong := f.svc.Signin(context.Background(), ports.SigninInput{Email: "vera@example.com", Password: "wrong-pass"})

	if errUnknown != domain.ErrInvalidCredentials || errWrong != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", errUnknown, errWrong)
	}
	if f.hasher.verifies-verifiesBefore != 2 {
		t.Fatalf("expected a hash comparison on both paths, got %d", f.hasher.verifies-verifiesBefore)
	}
	if len(f.tokens.issued) != 0 {
		t.Fatal("no token must be issued on failure")
	}
	for _, a := range f.activity.actions() {
		if a != domain.ActionSigninFailed {
			t.Fatalf("expected signin_failed activity, got %s", a)
		}
	}
}

func TestAuthService_Signin_Validation(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Signin(context.Background(), ports.SigninInput{Email: "bad", Password: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(f.repo.calls) != 0 {
		t.Fatalf("expected no store access, got %v", f.repo.calls)
	}
}

func TestAuthService_Signin_StoreFailure(t *testing.T) {
	f := newAuthFixture()
	f.repo.findErr = domain.NewStoreError("find account", errors.New("timeout"))

	_, err := f.svc.Signin(context.Background(), ports.SigninInput{Email: "vera@example.com", Password: "secret1"})
	if !errors.Is(err, domain.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	f := newAuthFixture()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	f.tokens.verify = func(string) (*domain.Identity, error) {
		return &domain.Identity{SubjectID: 9, Role: domain.RoleAdmin, TokenID: "jti-9", ExpiresAt: exp}, nil
	}

	if err := f.svc.Logout(context.Background(), ports.LogoutInput{Token: "tok"}); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if until, ok := f.revoked.revoked["jti-9"]; !ok || !until.Equal(exp) {
		t.Fatalf("expected jti-9 revoked until %v, got %v (%v)", exp, until, ok)
	}
	if a := f.activity.actions(); len(a) != 1 || a[0] != domain.ActionLogout {
		t.Fatalf("expected logout activity, got %v", a)
	}
}

func TestAuthService_Logout_WithoutUsableToken(t *testing.T) {
	f := newAuthFixture()

	for _, tok := range []string{"", "garbage"} {
		if err := f.svc.Logout(context.Background(), ports.LogoutInput{Token: tok}); err != nil {
			t.Fatalf("Logout(%q) returned error: %v", tok, err)
		}
	}
	if len(f.revoked.revoked) != 0 {
		t.Fatal("nothing should be revoked")
	}
}

func TestAuthService_Logout_RevocationFailure(t *testing.T) {
	f := newAuthFixture()
	f.revoked.err = errors.New("redis down")
	f.tokens.verify = func(string) (*domain.Identity, error) {
		return &domain.Identity{SubjectID: 1, Role: domain.RoleVendor, TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}, nil
	}

	err := f.svc.Logout(context.Background(), ports.LogoutInput{Token: "tok"})
	if !errors.Is(err, domain.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestAuthService_Logout_RevocationDisabled(t *testing.T) {
	f := newAuthFixture()
	f.tokens.verify = func(string) (*domain.Identity, error) {
		return &domain.Identity{SubjectID: 1, Role: domain.RoleVendor, TokenID: "jti"}, nil
	}
	svc := NewAuthService(f.repo, f.hasher, f.tokens, f.tokens, nil, f.activity, zerolog.Nop())

	if err := svc.Logout(context.Background(), ports.LogoutInput{Token: "tok"}); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
}
