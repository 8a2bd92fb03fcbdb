// Package repositories is the persistence gateway: one value type per table,
// each falling back to the shared pool in config.DB when DB is nil.
package repositories

import (
	"database/sql"

	intconfig "umrah/internal/config"
)

func pick(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// dateCol renders a DATE column as YYYY-MM-DD ('' when NULL).
func dateCol(expr, alias string) string {
	return "COALESCE(DATE_FORMAT(" + expr + ", '%Y-%m-%d'), '') AS " + alias
}
