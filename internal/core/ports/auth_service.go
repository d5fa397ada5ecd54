package ports

import (
	"context"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// SignupInput carries the registration form. Role-specific profile fields are
// optional except CompanyName for vendors.
type SignupInput struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin vendor job_seeker"`

	CompanyName   string `json:"company_name" validate:"required_if=Role vendor,max=150"`
	Website       string `json:"website"      validate:"max=255"`
	Description   string `json:"description"`
	Resume        string `json:"resume"         validate:"max=255"`
	Education     string `json:"education"`
	Experience    string `json:"experience"`
	AdminLevel    string `json:"admin_level"    validate:"max=50"`
	ContactNumber string `json:"contact_number" validate:"max=20"`

	IPAddress string `json:"-"`
}

// SigninInput carries login credentials.
type SigninInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`

	IPAddress string `json:"-"`
}

// SigninResult is returned on successful authentication.
type SigninResult struct {
	Token string
	User  domain.AccountSummary
}

// LogoutInput carries the token presented on logout, if any.
type LogoutInput struct {
	Token     string
	IPAddress string
}

// AuthService implements signup, signin and logout.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) error
	Signin(ctx context.Context, in SigninInput) (*SigninResult, error)
	Logout(ctx context.Context, in LogoutInput) error
}

// AccountService exposes read access to accounts.
type AccountService interface {
	GetAccount(ctx context.Context, id uint64) (*domain.AccountSummary, error)
}
