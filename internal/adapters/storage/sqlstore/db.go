// Package sqlstore implements the reading and user repositories on top of
// sqlx. SQLite (modernc.org/sqlite), PostgreSQL (lib/pq) and MySQL
// (go-sql-driver/mysql) are supported; queries are written with ? and
// rebound per driver.
package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

// Dialect identifies a supported database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

func init() {
	sqlx.BindDriver(string(DialectSQLite), sqlx.QUESTION)
}

// ParseDialect validates a configured driver name.
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(driver)); d {
	case DialectSQLite, DialectPostgres, DialectMySQL:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Config holds connection settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is a connection pool bound to one dialect.
type DB struct {
	*sqlx.DB

	dialect Dialect
}

// NewDB wraps an existing pool.
func NewDB(db *sqlx.DB, dialect Dialect) *DB {
	return &DB{DB: db, dialect: dialect}
}

// Open connects and pings the database.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := prepareDSN(dialect, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialect, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("pinging %s database: %w", dialect, err)
	}

	return NewDB(db, dialect), nil
}

// Dialect returns the database flavour.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string {
	return "database"
}

// Check implements ports.HealthChecker.
func (db *DB) Check(ctx context.Context) error {
	return db.PingContext(ctx)
}

// prepareDSN adds the options the repositories rely on.
func prepareDSN(dialect Dialect, dsn string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return prepareSQLiteDSN(dsn)
	case DialectMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}

		cfg.ParseTime = true
		cfg.Loc = time.UTC
		cfg.MultiStatements = true // migration files hold several statements
		cfg.ClientFoundRows = true // UPDATE reports matched rows, not changed rows

		return cfg.FormatDSN(), nil
	default:
		return dsn, nil
	}
}

var sqlitePragmas = []struct{ key, value string }{
	{"foreign_keys", "_pragma=foreign_keys(1)"},
	{"journal_mode", "_pragma=journal_mode(WAL)"},
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_time_format", "_time_format=sqlite"},
}

func prepareSQLiteDSN(dsn string) (string, error) {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")

	if path != "" && path != ":memory:" && !strings.HasPrefix(path, ":") {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return "", fmt.Errorf("creating database directory: %w", err)
		}
	}

	params := []string{}
	if query != "" {
		params = append(params, query)
	}

	for _, p := range sqlitePragmas {
		if !strings.Contains(query, p.key) {
			params = append(params, p.value)
		}
	}

	return "file:" + path + "?" + strings.Join(params, "&"), nil
}
