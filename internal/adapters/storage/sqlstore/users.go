package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

type userRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

// UserRepository stores accounts.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a repository on db.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create implements ports.UserRepository.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const q = `INSERT INTO users (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)`

	row := userRow{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
	}

	if _, err := r.db.NamedExecContext(ctx, q, row); err != nil {
		return fmt.Errorf("inserting user: %w", translate(err, "user", user.ID))
	}

	return nil
}

// GetByEmail implements ports.UserRepository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByID implements ports.UserRepository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

// getBy looks a user up by a trusted column name.
func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	q := r.db.Rebind(`SELECT id, email, password_hash, created_at FROM users WHERE ` + column + ` = ?`)

	var row userRow
	if err := r.db.GetContext(ctx, &row, q, value); err != nil {
		return nil, translate(err, "user", value)
	}

	return row.toDomain(), nil
}
