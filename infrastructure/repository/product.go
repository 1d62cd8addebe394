package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

type ProductAnalyticsRepository interface {
	CategoryPerformance(filters *domain.ReportFilters) ([]*domain.CategoryPerformance, error)
	SubCategoryPerformance(filters *domain.ReportFilters) ([]*domain.SubCategoryPerformance, error)
	ProductsByRevenue(filters *domain.ReportFilters, limit uint64, ascending bool) ([]*domain.ProductRevenue, error)
}

type productAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewProductAnalyticsRepository(conn *postgres.Connection) ProductAnalyticsRepository {
	return &productAnalyticsRepository{
		conn: conn,
	}
}

func (r *productAnalyticsRepository) CategoryPerformance(filters *domain.ReportFilters) ([]*domain.CategoryPerformance, error) {
	builder := squirrel.
		Select(
			"category",
			"COUNT(DISTINCT order_id) as orders",
			"SUM(quantity) as units_sold",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(SUM(profit)::numeric, 2) as profit",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
		).
		From(ordersTable).
		GroupBy("category").
		OrderBy("revenue DESC")

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.CategoryPerformance, 0)
	for rows.Next() {
		row := &domain.CategoryPerformance{}
		err := rows.Scan(&row.Category, &row.Orders, &row.UnitsSold, &row.Revenue, &row.Profit, &row.AvgMargin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *productAnalyticsRepository) SubCategoryPerformance(filters *domain.ReportFilters) ([]*domain.SubCategoryPerformance, error) {
	builder := squirrel.
		Select(
			"category",
			"sub_category",
			"COUNT(*) as orders",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
		).
		From(ordersTable).
		GroupBy("category", "sub_category").
		OrderBy("revenue DESC")

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-category performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.SubCategoryPerformance, 0)
	for rows.Next() {
		row := &domain.SubCategoryPerformance{}
		err := rows.Scan(&row.Category, &row.SubCategory, &row.Orders, &row.Revenue, &row.AvgMargin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sub-category performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// ProductsByRevenue returns the top performers (descending) or the bottom
// performers (ascending) within the filtered window.
func (r *productAnalyticsRepository) ProductsByRevenue(filters *domain.ReportFilters, limit uint64, ascending bool) ([]*domain.ProductRevenue, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	builder := squirrel.
		Select(
			"product_id",
			"category",
			"sub_category",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(AVG(profit_margin)::numeric, 2) as margin",
		).
		From(ordersTable).
		GroupBy("product_id", "category", "sub_category").
		OrderBy("revenue " + direction).
		Limit(limit)

	query, args, err := applyReportFilters(builder, filters).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by revenue: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.ProductRevenue, 0)
	for rows.Next() {
		row := &domain.ProductRevenue{}
		err := rows.Scan(&row.ProductID, &row.Category, &row.SubCategory, &row.Revenue, &row.Margin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product revenue: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
