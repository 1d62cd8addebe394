package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

// yearlyGrowthSQL computes year-over-year revenue growth from a yearly CTE.
// LAG pulls the previous year's revenue; NULLIF guards the division.
const yearlyGrowthSQL = `
WITH yearly AS (
	SELECT
		year,
		SUM(sale_price) as revenue,
		SUM(profit) as profit,
		COUNT(*) as orders
	FROM orders
	GROUP BY year
)
SELECT
	year,
	revenue,
	profit,
	orders,
	LAG(revenue) OVER (ORDER BY year) as prev_revenue,
	ROUND(((revenue - LAG(revenue) OVER (ORDER BY year)) /
	       NULLIF(LAG(revenue) OVER (ORDER BY year), 0) * 100)::numeric, 2) as revenue_growth
FROM yearly
ORDER BY year`

type TimeSeriesRepository interface {
	MonthlyRevenueTrend() ([]*domain.MonthlyRevenuePoint, error)
	YearKPIs(year int) (*domain.YearKPIs, error)
	YearlyPerformance() ([]*domain.YearlyPerformance, error)
	SegmentPerformance() ([]*domain.SegmentPerformance, error)
	MonthlyMetric(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error)
	YearOverYearByMonth(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error)
	QuarterlyPerformance(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.QuarterPerformance, error)
	CategoryQuarterlyRevenue() ([]*domain.CategoryQuarterRevenue, error)
	YearlyGrowth() ([]*domain.YearlyGrowth, error)
}

type timeSeriesRepository struct {
	conn *postgres.Connection
}

func NewTimeSeriesRepository(conn *postgres.Connection) TimeSeriesRepository {
	return &timeSeriesRepository{
		conn: conn,
	}
}

func (r *timeSeriesRepository) MonthlyRevenueTrend() ([]*domain.MonthlyRevenuePoint, error) {
	query, args, err := squirrel.
		Select(
			"DATE_TRUNC('month', order_date) as month",
			"SUM(sale_price) as revenue",
			"SUM(profit) as profit",
		).
		From(ordersTable).
		GroupBy("DATE_TRUNC('month', order_date)").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue trend: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.MonthlyRevenuePoint, 0)
	for rows.Next() {
		row := &domain.MonthlyRevenuePoint{}
		if err := rows.Scan(&row.Month, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue trend: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) YearKPIs(year int) (*domain.YearKPIs, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) as orders",
			"COALESCE(SUM(sale_price), 0) as revenue",
			"COALESCE(SUM(profit), 0) as profit",
			"COALESCE(AVG(profit_margin), 0) as avg_margin",
			"COALESCE(AVG(sale_price), 0) as avg_order_value",
		).
		From(ordersTable).
		Where(squirrel.Eq{"year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	kpis := &domain.YearKPIs{Year: year}
	err = r.conn.QueryRow(query, args...).Scan(
		&kpis.Orders,
		&kpis.Revenue,
		&kpis.Profit,
		&kpis.AvgMargin,
		&kpis.AvgOrderValue,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan year KPIs: %w", err)
	}

	return kpis, nil
}

func (r *timeSeriesRepository) YearlyPerformance() ([]*domain.YearlyPerformance, error) {
	query, args, err := squirrel.
		Select(
			"year",
			"COUNT(*) as orders",
			"SUM(sale_price) as revenue",
			"SUM(profit) as profit",
			"AVG(profit_margin) as avg_margin",
		).
		From(ordersTable).
		GroupBy("year").
		OrderBy("year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.YearlyPerformance, 0)
	for rows.Next() {
		row := &domain.YearlyPerformance{}
		if err := rows.Scan(&row.Year, &row.Orders, &row.Revenue, &row.Profit, &row.AvgMargin); err != nil {
			return nil, fmt.Errorf("failed to scan yearly performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) SegmentPerformance() ([]*domain.SegmentPerformance, error) {
	query, args, err := squirrel.
		Select(
			"segment",
			"COUNT(*) as orders",
			"SUM(sale_price) as revenue",
			"SUM(profit) as profit",
			"AVG(profit_margin) as avg_margin",
		).
		From(ordersTable).
		Where(squirrel.NotEq{"segment": nil}).
		GroupBy("segment").
		OrderBy("revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.SegmentPerformance, 0)
	for rows.Next() {
		row := &domain.SegmentPerformance{}
		if err := rows.Scan(&row.Segment, &row.Orders, &row.Revenue, &row.Profit, &row.AvgMargin); err != nil {
			return nil, fmt.Errorf("failed to scan segment performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) MonthlyMetric(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error) {
	builder := squirrel.
		Select(
			"year",
			"month",
			"month_name",
			metricExpr(metric)+" as value",
		).
		From(ordersTable).
		GroupBy("year", "month", "month_name").
		OrderBy("year ASC", "month ASC")

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly metric: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.MonthlyMetricPoint, 0)
	for rows.Next() {
		row := &domain.MonthlyMetricPoint{}
		if err := rows.Scan(&row.Year, &row.Month, &row.MonthName, &row.Value); err != nil {
			return nil, fmt.Errorf("failed to scan monthly metric: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// YearOverYearByMonth returns the metric per calendar month across all
// years, ordered month-first so each month's years sit next to each other.
func (r *timeSeriesRepository) YearOverYearByMonth(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error) {
	builder := squirrel.
		Select(
			"year",
			"month",
			"month_name",
			metricExpr(metric)+" as value",
		).
		From(ordersTable).
		GroupBy("year", "month", "month_name").
		OrderBy("month ASC", "year ASC")

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query year-over-year by month: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.MonthlyMetricPoint, 0)
	for rows.Next() {
		row := &domain.MonthlyMetricPoint{}
		if err := rows.Scan(&row.Year, &row.Month, &row.MonthName, &row.Value); err != nil {
			return nil, fmt.Errorf("failed to scan year-over-year by month: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) QuarterlyPerformance(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.QuarterPerformance, error) {
	builder := squirrel.
		Select(
			"year",
			"quarter",
			metricExpr(metric)+" as value",
			"COUNT(DISTINCT order_id) as orders",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
		).
		From(ordersTable).
		GroupBy("year", "quarter").
		OrderBy("year ASC", "quarter ASC")

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quarterly performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.QuarterPerformance, 0)
	for rows.Next() {
		row := &domain.QuarterPerformance{}
		if err := rows.Scan(&row.Year, &row.Quarter, &row.Value, &row.Orders, &row.AvgMargin); err != nil {
			return nil, fmt.Errorf("failed to scan quarterly performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) CategoryQuarterlyRevenue() ([]*domain.CategoryQuarterRevenue, error) {
	query, args, err := squirrel.
		Select(
			"year",
			"quarter",
			"category",
			"SUM(sale_price) as revenue",
		).
		From(ordersTable).
		GroupBy("year", "quarter", "category").
		OrderBy("year ASC", "quarter ASC", "category ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category quarterly revenue: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.CategoryQuarterRevenue, 0)
	for rows.Next() {
		row := &domain.CategoryQuarterRevenue{}
		if err := rows.Scan(&row.Year, &row.Quarter, &row.Category, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan category quarterly revenue: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *timeSeriesRepository) YearlyGrowth() ([]*domain.YearlyGrowth, error) {
	rows, err := r.conn.Query(yearlyGrowthSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly growth: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.YearlyGrowth, 0)
	for rows.Next() {
		row := &domain.YearlyGrowth{}
		var prevRevenue, revenueGrowth sql.NullFloat64
		if err := rows.Scan(&row.Year, &row.Revenue, &row.Profit, &row.Orders, &prevRevenue, &revenueGrowth); err != nil {
			return nil, fmt.Errorf("failed to scan yearly growth: %w", err)
		}
		if prevRevenue.Valid {
			row.PrevRevenue = &prevRevenue.Float64
		}
		if revenueGrowth.Valid {
			row.RevenueGrowth = &revenueGrowth.Float64
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
