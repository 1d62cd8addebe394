package postgres

import (
	"database/sql"
)

// Queryer is the subset of *sql.DB the repositories use. *sql.Tx satisfies
// it too, which lets the ETL loader run against an open transaction.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
