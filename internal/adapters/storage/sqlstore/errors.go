package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/numerology-service/internal/domain"
)

// Driver error codes.
const (
	pqUniqueViolation = "23505"
	mysqlDupEntry     = 1062
)

// translate maps driver errors to domain errors. Anything unrecognised is
// returned unchanged.
func translate(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	if detail, ok := uniqueViolation(err); ok {
		return domain.NewConflictErrorWithDetails(entity, "duplicate key", detail)
	}

	if busy(err) {
		return domain.NewUnavailableError("database", "busy")
	}

	return err
}

func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return pqErr.Constraint, true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDupEntry {
		return myErr.Message, true
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return liteErr.Error(), true
		}
	}

	return "", false
}

func busy(err error) bool {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return false
	}

	switch liteErr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	default:
		return false
	}
}

// affected turns a zero-row write into a not-found error.
func affected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}

	return nil
}
