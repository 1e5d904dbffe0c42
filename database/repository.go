package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Repository provides typed CRUD and filtered queries over the schema.
// Every read hands back fully marshalled entities, never rows or
// cursors; every mutation is a single statement.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// IsConstraintErr reports whether err is a NOT NULL or foreign-key
// violation from the store, so callers can distinguish bad input from
// an unavailable database.
func IsConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

// nullable maps an optional empty string to a SQL NULL so the stored
// shape matches rows written by column defaults.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
