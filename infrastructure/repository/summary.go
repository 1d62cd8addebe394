package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

const (
	ordersTable       = "orders"
	summaryView       = "order_summary"
	summaryCacheTable = "order_summary_cache"
)

type SummaryRepository interface {
	GetSummaryStats() (*domain.SummaryStats, error)
	GetFilterOptions() (*domain.FilterOptions, error)
	RefreshSummaryCache() (*domain.SummaryStats, error)
	GetCachedSummary() (*domain.SummaryStats, *time.Time, error)
}

type summaryRepository struct {
	conn *postgres.Connection
}

func NewSummaryRepository(conn *postgres.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

func (r *summaryRepository) GetSummaryStats() (*domain.SummaryStats, error) {
	query, args, err := squirrel.
		Select(
			"total_orders", "total_revenue", "total_profit",
			"avg_order_value", "avg_profit_margin",
			"first_order_date", "last_order_date",
		).
		From(summaryView).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	stats := &domain.SummaryStats{}
	err = r.conn.QueryRow(query, args...).Scan(
		&stats.TotalOrders,
		&stats.TotalRevenue,
		&stats.TotalProfit,
		&stats.AvgOrderValue,
		&stats.AvgProfitMargin,
		&stats.FirstOrderDate,
		&stats.LastOrderDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan summary stats: %w", err)
	}

	return stats, nil
}

func (r *summaryRepository) GetFilterOptions() (*domain.FilterOptions, error) {
	options := &domain.FilterOptions{}

	if err := r.distinctStrings("category", &options.Categories); err != nil {
		return nil, err
	}
	if err := r.distinctStrings("region", &options.Regions); err != nil {
		return nil, err
	}
	if err := r.distinctStrings("segment", &options.Segments); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("DISTINCT year").
		From(ordersTable).
		OrderBy("year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		options.Years = append(options.Years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating years: %w", err)
	}

	var minDate, maxDate sql.NullTime
	err = r.conn.QueryRow("SELECT MIN(order_date), MAX(order_date) FROM orders").Scan(&minDate, &maxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read date range: %w", err)
	}
	if minDate.Valid {
		options.MinDate = &minDate.Time
	}
	if maxDate.Valid {
		options.MaxDate = &maxDate.Time
	}

	return options, nil
}

func (r *summaryRepository) distinctStrings(column string, dest *[]string) error {
	query, args, err := squirrel.
		Select("DISTINCT "+column).
		From(ordersTable).
		Where(squirrel.NotEq{column: nil}).
		OrderBy(column + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to list %s values: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("failed to scan %s value: %w", column, err)
		}
		*dest = append(*dest, value)
	}

	return rows.Err()
}

// RefreshSummaryCache re-materializes the order_summary view into the
// single-row cache table and returns the fresh stats.
func (r *summaryRepository) RefreshSummaryCache() (*domain.SummaryStats, error) {
	upsert := fmt.Sprintf(`
		INSERT INTO %s (
			id, total_orders, total_revenue, total_profit,
			avg_order_value, avg_profit_margin, first_order_date, last_order_date, refreshed_at
		)
		SELECT
			1, total_orders, total_revenue, total_profit,
			avg_order_value, avg_profit_margin, first_order_date, last_order_date, NOW()
		FROM %s
		ON CONFLICT (id) DO UPDATE SET
			total_orders = EXCLUDED.total_orders,
			total_revenue = EXCLUDED.total_revenue,
			total_profit = EXCLUDED.total_profit,
			avg_order_value = EXCLUDED.avg_order_value,
			avg_profit_margin = EXCLUDED.avg_profit_margin,
			first_order_date = EXCLUDED.first_order_date,
			last_order_date = EXCLUDED.last_order_date,
			refreshed_at = EXCLUDED.refreshed_at
	`, summaryCacheTable, summaryView)

	if _, err := r.conn.Exec(upsert); err != nil {
		return nil, fmt.Errorf("failed to refresh summary cache: %w", err)
	}

	stats, _, err := r.GetCachedSummary()
	return stats, err
}

func (r *summaryRepository) GetCachedSummary() (*domain.SummaryStats, *time.Time, error) {
	query, args, err := squirrel.
		Select(
			"total_orders", "total_revenue", "total_profit",
			"avg_order_value", "avg_profit_margin",
			"first_order_date", "last_order_date", "refreshed_at",
		).
		From(summaryCacheTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build query: %w", err)
	}

	stats := &domain.SummaryStats{}
	var refreshedAt time.Time
	err = r.conn.QueryRow(query, args...).Scan(
		&stats.TotalOrders,
		&stats.TotalRevenue,
		&stats.TotalProfit,
		&stats.AvgOrderValue,
		&stats.AvgProfitMargin,
		&stats.FirstOrderDate,
		&stats.LastOrderDate,
		&refreshedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to scan cached summary: %w", err)
	}

	return stats, &refreshedAt, nil
}
