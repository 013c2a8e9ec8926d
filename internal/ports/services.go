// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; every method takes a context and returns domain
// types and domain errors (ErrNotFound, ErrConflict, ...).
package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
)

// ReadingRepository persists readings.
type ReadingRepository interface {
	// Create stores a new reading. The ID must already be set.
	Create(ctx context.Context, reading *domain.Reading) error

	// GetByID returns domain.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*domain.Reading, error)

	// ListByOwner returns an owner's readings, newest first.
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*domain.Reading, error)

	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// AttachReport records the rendered report for a reading.
	AttachReport(ctx context.Context, id, reportID string) error

	// Delete returns domain.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// UserRepository persists registered accounts.
type UserRepository interface {
	// Create returns domain.ErrConflict when the email is already taken.
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ReportRenderer turns a reading into a printable document.
type ReportRenderer interface {
	Render(ctx context.Context, reading *domain.Reading) ([]byte, error)
}

// ReportStore keeps rendered reports.
type ReportStore interface {
	Save(ctx context.Context, id string, content []byte) (*domain.Report, error)

	// Open returns domain.ErrNotFound for unknown ids. The caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *domain.Report, error)

	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Report, error)

	// Prune removes reports created before cutoff and returns how many went.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)

	// Verify returns domain.ErrUnauthorized for invalid or expired tokens.
	Verify(token string) (*domain.Identity, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns domain.ErrUnauthorized on mismatch.
	Compare(hash, password string) error
}
