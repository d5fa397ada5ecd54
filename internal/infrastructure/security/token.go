package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed validity window of issued tokens.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the JWT payload.
type Claims struct {
	UserID uint64      `json:"userId"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig configures a JWTManager.
type JWTConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// JWTManager issues and verifies HS256 tokens. It holds no mutable state and
// is safe for concurrent use.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var errEmptySecret = errors.New("jwt: empty signing secret")

// NewJWTManager validates cfg and returns a manager.
func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errEmptySecret
	}
	m := &JWTManager{
		secret: append([]byte(nil), cfg.Secret...),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    cfg.Now,
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTokenTTL
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m, nil
}

// Issue signs a token asserting subjectID and role.
func (m *JWTManager) Issue(subjectID uint64, role domain.Role) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: subjectID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(subjectID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates token. It never panics; every failure is a
// *domain.TokenError.
func (m *JWTManager) Verify(token string) (id *domain.Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			id, err = nil, domain.NewTokenError(domain.TokenMalformed, nil)
		}
	}()

	if token == "" {
		return nil, domain.NewTokenError(domain.TokenMissing, nil)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, classify(err)
	}
	if !tkn.Valid {
		return nil, domain.NewTokenError(domain.TokenSignatureInvalid, nil)
	}

	if !claims.Role.Valid() {
		return nil, domain.NewTokenError(domain.TokenMalformed, errors.New("unknown role"))
	}
	sub, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || sub != claims.UserID {
		return nil, domain.NewTokenError(domain.TokenMalformed, errors.New("subject mismatch"))
	}

	identity := &domain.Identity{
		SubjectID: claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.NewTokenError(domain.TokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.NewTokenError(domain.TokenSignatureInvalid, err)
	default:
		return domain.NewTokenError(domain.TokenMalformed, err)
	}
}
