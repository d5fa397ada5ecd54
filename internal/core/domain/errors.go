package domain

import "errors"

// Error taxonomy. Handlers map these to HTTP status codes; typed errors below
// match them through errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrAccountNotFound    = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrJobClosed          = errors.New("job is not accepting applications")
	ErrAlreadyApplied     = errors.New("application already submitted")
	ErrStore              = errors.New("store failure")
)

// ValidationError carries a client-safe description of malformed input.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TokenFailure names why a bearer token was rejected.
type TokenFailure string

const (
	TokenMissing          TokenFailure = "missing"
	TokenMalformed        TokenFailure = "malformed"
	TokenSignatureInvalid TokenFailure = "signature_invalid"
	TokenExpired          TokenFailure = "expired"
	TokenRevoked          TokenFailure = "revoked"
)

// TokenError is returned by token verification. Every reason is an
// authentication failure.
type TokenError struct {
	Reason TokenFailure
	Err    error
}

func NewTokenError(reason TokenFailure, err error) error {
	return &TokenError{Reason: reason, Err: err}
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return "token " + string(e.Reason) + ": " + e.Err.Error()
	}
	return "token " + string(e.Reason)
}

func (e *TokenError) Unwrap() error { return e.Err }

func (e *TokenError) Is(target error) bool { return target == ErrUnauthenticated }

// TokenFailureOf extracts the failure reason from err, if any.
func TokenFailureOf(err error) (TokenFailure, bool) {
	var te *TokenError
	if errors.As(err, &te) {
		return te.Reason, true
	}
	return "", false
}

// StoreError wraps an unexpected persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }
