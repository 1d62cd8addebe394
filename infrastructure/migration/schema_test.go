package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, stmts []string, fragment string) int {
	t.Helper()
	for i, stmt := range stmts {
		if strings.Contains(stmt, fragment) {
			return i
		}
	}
	require.Failf(t, "statement not found", "no statement contains %q", fragment)
	return -1
}

func TestSupportingObjectStatements_RematerializeSummaryCache(t *testing.T) {
	stmts := supportingObjectStatements()

	createView := indexOf(t, stmts, "CREATE OR REPLACE VIEW order_summary")
	createCache := indexOf(t, stmts, "CREATE TABLE IF NOT EXISTS order_summary_cache")
	clearCache := indexOf(t, stmts, "DELETE FROM order_summary_cache")
	seedCache := indexOf(t, stmts, "INSERT INTO order_summary_cache")
	firstIndex := indexOf(t, stmts, "CREATE INDEX IF NOT EXISTS idx_orders_order_date")

	// A reload must never leave the previous dataset's KPI row behind: the
	// cache is wiped and reseeded from the fresh view before the indexes.
	assert.Less(t, createView, seedCache)
	assert.Less(t, createCache, clearCache)
	assert.Less(t, clearCache, seedCache)
	assert.Less(t, seedCache, firstIndex)

	assert.Contains(t, stmts[seedCache], "FROM order_summary")
	assert.Contains(t, stmts[seedCache], "WHERE total_orders > 0")
}
