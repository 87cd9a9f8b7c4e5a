package database

import (
	"database/sql"
	"errors"

	"github.com/kwetu-stack/cbc-connect/app/services"
)

// Store is the Postgres backend for every service store contract. One
// instance wraps the shared pooled *sql.DB; each method is a single
// statement (or a short statement sequence) and releases its connection on
// every exit path.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// notFound maps the driver's no-rows signal onto the service taxonomy.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return services.ErrNotFound
	}
	return err
}
