package sqlstore

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationFS embed.FS

// Migrate applies every pending migration for the database's dialect.
func Migrate(db *DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	src, err := iofs.New(migrationFS, "migrations/"+string(db.dialect))
	if err != nil {
		return fmt.Errorf("loading %s migrations: %w", db.dialect, err)
	}
	defer src.Close()

	driver, err := migrationDriver(db)
	if err != nil {
		return fmt.Errorf("creating %s migration driver: %w", db.dialect, err)
	}

	// The migrate instance is not closed: closing it would close db.
	m, err := migrate.NewWithInstance("iofs", src, string(db.dialect), driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading schema version: %w", err)
	}

	logger.Info("database migrated",
		slog.String("dialect", string(db.dialect)),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

func migrationDriver(db *DB) (database.Driver, error) {
	switch db.dialect {
	case DialectSQLite:
		return sqlite.WithInstance(db.DB.DB, &sqlite.Config{})
	case DialectPostgres:
		return postgres.WithInstance(db.DB.DB, &postgres.Config{})
	case DialectMySQL:
		return mysql.WithInstance(db.DB.DB, &mysql.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", db.dialect)
	}
}
