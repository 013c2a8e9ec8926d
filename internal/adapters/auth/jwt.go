// Package auth provides the JWT token issuer and the bcrypt password hasher.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// MinSecretLength is the shortest accepted HMAC secret, in bytes.
const MinSecretLength = 32

var (
	_ ports.TokenIssuer    = (*Issuer)(nil)
	_ ports.PasswordHasher = (*Hasher)(nil)
)

// ErrWeakSecret is returned by NewIssuer for secrets under MinSecretLength.
var ErrWeakSecret = errors.New("jwt secret must be at least 32 bytes")

// Claims are the access token claims.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer creates an Issuer.
func NewIssuer(secret, issuer string, ttl time.Duration, opts ...IssuerOption) (*Issuer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	i := &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// Issue implements ports.TokenIssuer.
func (i *Issuer) Issue(user *domain.User) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify implements ports.TokenIssuer. Every failure is reported as
// domain.ErrUnauthorized.
func (i *Issuer) Verify(token string) (*domain.Identity, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.NewUnauthorizedError("token expired")
		}

		return nil, domain.NewUnauthorizedError("invalid token")
	}

	if claims.Subject == "" {
		return nil, domain.NewUnauthorizedError("token has no subject")
	}

	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
