// Package migration holds the DDL for the orders schema. The ETL seeder
// recreates the whole schema on every load, matching the replace-style
// pipeline the dashboard expects.
package migration

import (
	"database/sql"
)

const dropSummaryViewSQL = `DROP VIEW IF EXISTS order_summary CASCADE`

const dropOrdersTableSQL = `DROP TABLE IF EXISTS orders`

const createOrdersTableSQL = `
CREATE TABLE orders (
	order_id         INTEGER PRIMARY KEY,
	order_date       DATE NOT NULL,
	ship_mode        TEXT,
	segment          TEXT,
	country          TEXT,
	city             TEXT,
	state            TEXT,
	postal_code      TEXT,
	region           TEXT,
	category         TEXT,
	sub_category     TEXT,
	product_id       TEXT,
	cost_price       DOUBLE PRECISION NOT NULL,
	list_price       DOUBLE PRECISION NOT NULL,
	quantity         INTEGER NOT NULL,
	discount_percent DOUBLE PRECISION NOT NULL,
	discount         DOUBLE PRECISION NOT NULL,
	sale_price       DOUBLE PRECISION NOT NULL,
	profit           DOUBLE PRECISION NOT NULL,
	profit_margin    DOUBLE PRECISION NOT NULL,
	year             INTEGER NOT NULL,
	month            INTEGER NOT NULL,
	month_name       TEXT NOT NULL,
	quarter          INTEGER NOT NULL
)`

const createSummaryViewSQL = `
CREATE OR REPLACE VIEW order_summary AS
SELECT
	COUNT(*) as total_orders,
	SUM(sale_price) as total_revenue,
	SUM(profit) as total_profit,
	AVG(sale_price) as avg_order_value,
	AVG(profit_margin) as avg_profit_margin,
	MIN(order_date) as first_order_date,
	MAX(order_date) as last_order_date
FROM orders`

// order_summary_cache holds a single materialized row of the view so the
// dashboard KPI cards do not recompute the full-table aggregate per hit.
const createSummaryCacheTableSQL = `
CREATE TABLE IF NOT EXISTS order_summary_cache (
	id                SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	total_orders      BIGINT NOT NULL,
	total_revenue     DOUBLE PRECISION NOT NULL,
	total_profit      DOUBLE PRECISION NOT NULL,
	avg_order_value   DOUBLE PRECISION NOT NULL,
	avg_profit_margin DOUBLE PRECISION NOT NULL,
	first_order_date  DATE NOT NULL,
	last_order_date   DATE NOT NULL,
	refreshed_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// The cache table survives a reload (CREATE TABLE IF NOT EXISTS), so the
// seeder re-materializes it from the fresh view within the same transaction.
// Otherwise the dashboard would keep serving the previous dataset's KPIs
// until the next cron refresh.
const clearSummaryCacheSQL = `DELETE FROM order_summary_cache`

const seedSummaryCacheSQL = `
INSERT INTO order_summary_cache (
	id, total_orders, total_revenue, total_profit,
	avg_order_value, avg_profit_margin, first_order_date, last_order_date
)
SELECT
	1, total_orders, total_revenue, total_profit,
	avg_order_value, avg_profit_margin, first_order_date, last_order_date
FROM order_summary
WHERE total_orders > 0`

var createIndexSQL = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_year ON orders (year)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_category ON orders (category)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_region ON orders (region)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_state ON orders (state)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_segment ON orders (segment)`,
}

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	lastname      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT FALSE,
	role_id       INTEGER NOT NULL DEFAULT 3,
	deleted       BOOLEAN NOT NULL DEFAULT FALSE,
	deleted_at    TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureUsersTable creates the dashboard users table if missing. The API
// runs this at startup; the ETL never touches it.
func EnsureUsersTable(db *sql.DB) error {
	_, err := db.Exec(createUsersTableSQL)
	return err
}

// ResetOrdersSchema drops the summary view and orders table and recreates
// the table. Runs inside the seeding transaction.
func ResetOrdersSchema(tx *sql.Tx) error {
	for _, stmt := range []string{dropSummaryViewSQL, dropOrdersTableSQL, createOrdersTableSQL} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateSupportingObjects recreates the summary view, re-materializes the
// summary cache from it and rebuilds the query indexes after a load.
func CreateSupportingObjects(tx *sql.Tx) error {
	for _, stmt := range supportingObjectStatements() {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func supportingObjectStatements() []string {
	stmts := []string{
		createSummaryViewSQL,
		createSummaryCacheTableSQL,
		clearSummaryCacheSQL,
		seedSummaryCacheSQL,
	}
	return append(stmts, createIndexSQL...)
}
