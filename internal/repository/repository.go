// Package repository holds the thin adapters between domain calls and
// database queries. Implementations translate gorm.ErrRecordNotFound into
// (nil, nil); services decide what "missing" means.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Store-level constraints own uniqueness (email, favorite pair,
// one rating per request); this is how the application hears about them.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
