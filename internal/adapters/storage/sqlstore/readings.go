package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

var _ ports.ReadingRepository = (*ReadingRepository)(nil)

const readingColumns = `id, name, date_of_birth, life_path_number, expression_number,
	soul_urge_number, owner_id, report_id, created_at`

type readingRow struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	DateOfBirth      string         `db:"date_of_birth"`
	LifePathNumber   int            `db:"life_path_number"`
	ExpressionNumber int            `db:"expression_number"`
	SoulUrgeNumber   int            `db:"soul_urge_number"`
	OwnerID          sql.NullString `db:"owner_id"`
	ReportID         sql.NullString `db:"report_id"`
	CreatedAt        time.Time      `db:"created_at"`
}

func toReadingRow(r *domain.Reading) readingRow {
	return readingRow{
		ID:               r.ID,
		Name:             r.Name,
		DateOfBirth:      r.DateOfBirth,
		LifePathNumber:   r.LifePathNumber,
		ExpressionNumber: r.ExpressionNumber,
		SoulUrgeNumber:   r.SoulUrgeNumber,
		OwnerID:          sql.NullString{String: r.OwnerID, Valid: r.OwnerID != ""},
		ReportID:         sql.NullString{String: r.ReportID, Valid: r.ReportID != ""},
		CreatedAt:        r.CreatedAt.UTC(),
	}
}

func (row readingRow) toDomain() *domain.Reading {
	return &domain.Reading{
		ID:               row.ID,
		Name:             row.Name,
		DateOfBirth:      row.DateOfBirth,
		LifePathNumber:   row.LifePathNumber,
		ExpressionNumber: row.ExpressionNumber,
		SoulUrgeNumber:   row.SoulUrgeNumber,
		OwnerID:          row.OwnerID.String,
		ReportID:         row.ReportID.String,
		CreatedAt:        row.CreatedAt.UTC(),
	}
}

// ReadingRepository stores readings.
type ReadingRepository struct {
	db *DB
}

// NewReadingRepository creates a repository on db.
func NewReadingRepository(db *DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create implements ports.ReadingRepository.
func (r *ReadingRepository) Create(ctx context.Context, reading *domain.Reading) error {
	const q = `INSERT INTO readings (` + readingColumns + `)
		VALUES (:id, :name, :date_of_birth, :life_path_number, :expression_number,
			:soul_urge_number, :owner_id, :report_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, q, toReadingRow(reading)); err != nil {
		return fmt.Errorf("inserting reading: %w", translate(err, "reading", reading.ID))
	}

	return nil
}

// GetByID implements ports.ReadingRepository.
func (r *ReadingRepository) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	q := r.db.Rebind(`SELECT ` + readingColumns + ` FROM readings WHERE id = ?`)

	var row readingRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, translate(err, "reading", id)
	}

	return row.toDomain(), nil
}

// ListByOwner implements ports.ReadingRepository.
func (r *ReadingRepository) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]*domain.Reading, error) {
	q := r.db.Rebind(`SELECT ` + readingColumns + ` FROM readings
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`)

	var rows []readingRow
	if err := r.db.SelectContext(ctx, &rows, q, ownerID, limit, offset); err != nil {
		return nil, fmt.Errorf("listing readings: %w", translate(err, "reading", ""))
	}

	readings := make([]*domain.Reading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, row.toDomain())
	}

	return readings, nil
}

// CountByOwner implements ports.ReadingRepository.
func (r *ReadingRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	q := r.db.Rebind(`SELECT COUNT(*) FROM readings WHERE owner_id = ?`)

	var n int
	if err := r.db.GetContext(ctx, &n, q, ownerID); err != nil {
		return 0, fmt.Errorf("counting readings: %w", translate(err, "reading", ""))
	}

	return n, nil
}

// AttachReport implements ports.ReadingRepository.
func (r *ReadingRepository) AttachReport(ctx context.Context, id, reportID string) error {
	q := r.db.Rebind(`UPDATE readings SET report_id = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, q, reportID, id)
	if err != nil {
		return fmt.Errorf("attaching report: %w", translate(err, "reading", id))
	}

	return affected(res, "reading", id)
}

// Delete implements ports.ReadingRepository.
func (r *ReadingRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Rebind(`DELETE FROM readings WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("deleting reading: %w", translate(err, "reading", id))
	}

	return affected(res, "reading", id)
}
