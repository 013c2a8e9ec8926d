package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// Auth operation labels for metrics.
const (
	authRegister = "register"
	authLogin    = "login"
)

// errInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot probe for accounts.
var errInvalidCredentials = domain.NewUnauthorizedError("invalid credentials")

// Token is an issued access token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// AuthServiceConfig holds the dependencies of an AuthService. Users, Hasher
// and Tokens are required.
type AuthServiceConfig struct {
	Users   ports.UserRepository
	Hasher  ports.PasswordHasher
	Tokens  ports.TokenIssuer
	Metrics Recorder
	Logger  *slog.Logger
	Now     func() time.Time
	NewID   func() string
}

// AuthService registers users and issues access tokens.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	metrics Recorder
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// NewAuthService panics when a required dependency is nil.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Users == nil || cfg.Hasher == nil || cfg.Tokens == nil {
		panic("app: AuthServiceConfig.Users, Hasher and Tokens are required")
	}

	return &AuthService{
		users:   cfg.Users,
		hasher:  cfg.Hasher,
		tokens:  cfg.Tokens,
		metrics: orNopRecorder(cfg.Metrics),
		logger:  orDefaultLogger(cfg.Logger, "app.AuthService"),
		now:     orNow(cfg.Now),
		newID:   orNewID(cfg.NewID),
	}
}

// Register creates an account. The email is stored normalized.
func (s *AuthService) Register(ctx context.Context, email, password string) (user *domain.User, err error) {
	defer func() { s.metrics.RecordAuth(authRegister, outcome(err)) }()

	email = domain.NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user = &domain.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewConflictError("user", "email already registered")
		}

		return nil, fmt.Errorf("creating user: %w", err)
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	return user, nil
}

// Login checks the credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (token *Token, err error) {
	defer func() { s.metrics.RecordAuth(authLogin, outcome(err)) }()

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			loggerFor(ctx, s.logger).InfoContext(ctx, "login rejected", slog.String("user_id", user.ID))

			return nil, errInvalidCredentials
		}

		return nil, fmt.Errorf("comparing password: %w", err)
	}

	value, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &Token{Value: value, ExpiresAt: expiresAt}, nil
}

// Authenticate verifies a bearer token.
func (s *AuthService) Authenticate(_ context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.NewUnauthorizedError("missing token")
	}

	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

func outcome(err error) string {
	if err != nil {
		return statusFailure
	}

	return statusSuccess
}
