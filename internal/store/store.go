package store

import (
	"database/sql"
	"fmt"

	"github.com/erazemk/izbor/internal/db"
	"github.com/erazemk/izbor/internal/model"
)

// Store persists items in a SQL database.
type Store struct {
	db      *sql.DB
	dialect db.Dialect
}

// New returns a Store backed by database, which must speak the given dialect.
func New(database *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: database, dialect: dialect}
}

// q adapts a query written with ? placeholders to the store's dialect.
func (s *Store) q(query string) string {
	return s.dialect.Rebind(query)
}

// storageErr marks err as a persistence failure while keeping the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", model.ErrStorage, op, err)
}
