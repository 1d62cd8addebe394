package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/database/postgres"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

const (
	// stateMinOrders hides low-volume states from the top-states chart.
	stateMinOrders = 20
	stateLimit     = 15
)

type RegionAnalyticsRepository interface {
	RegionalOverview(regions []string) ([]*domain.RegionPerformance, error)
	StatePerformance(regions []string) ([]*domain.StatePerformance, error)
	ShipModeBreakdown(regions []string) ([]*domain.ShipModePerformance, error)
	TopCities(regions []string, limit uint64) ([]*domain.CityRevenue, error)
}

type regionAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewRegionAnalyticsRepository(conn *postgres.Connection) RegionAnalyticsRepository {
	return &regionAnalyticsRepository{
		conn: conn,
	}
}

func regionFilter(builder squirrel.SelectBuilder, regions []string) squirrel.SelectBuilder {
	if len(regions) > 0 {
		builder = builder.Where(squirrel.Eq{"region": regions})
	}
	return builder
}

// RegionalOverview aggregates per region; revenue_share is each region's
// slice of the filtered total, computed with a window over the grouped sums.
func (r *regionAnalyticsRepository) RegionalOverview(regions []string) ([]*domain.RegionPerformance, error) {
	builder := squirrel.
		Select(
			"region",
			"COUNT(DISTINCT order_id) as orders",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(SUM(profit)::numeric, 2) as profit",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
			"ROUND((SUM(sale_price) / SUM(SUM(sale_price)) OVER () * 100)::numeric, 2) as revenue_share",
		).
		From(ordersTable).
		GroupBy("region").
		OrderBy("revenue DESC")

	query, args, err := regionFilter(builder, regions).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query regional overview: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.RegionPerformance, 0)
	for rows.Next() {
		row := &domain.RegionPerformance{}
		err := rows.Scan(&row.Region, &row.Orders, &row.Revenue, &row.Profit, &row.AvgMargin, &row.RevenueShare)
		if err != nil {
			return nil, fmt.Errorf("failed to scan regional overview: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *regionAnalyticsRepository) StatePerformance(regions []string) ([]*domain.StatePerformance, error) {
	builder := squirrel.
		Select(
			"state",
			"region",
			"COUNT(*) as orders",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(SUM(profit)::numeric, 2) as profit",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
		).
		From(ordersTable).
		GroupBy("state", "region").
		Having(fmt.Sprintf("COUNT(*) >= %d", stateMinOrders)).
		OrderBy("revenue DESC").
		Limit(stateLimit)

	query, args, err := regionFilter(builder, regions).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query state performance: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.StatePerformance, 0)
	for rows.Next() {
		row := &domain.StatePerformance{}
		err := rows.Scan(&row.State, &row.Region, &row.Orders, &row.Revenue, &row.Profit, &row.AvgMargin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan state performance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *regionAnalyticsRepository) ShipModeBreakdown(regions []string) ([]*domain.ShipModePerformance, error) {
	builder := squirrel.
		Select(
			"region",
			"COALESCE(ship_mode, 'Unknown') as ship_mode",
			"COUNT(*) as orders",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
			"ROUND(AVG(profit_margin)::numeric, 2) as avg_margin",
		).
		From(ordersTable).
		GroupBy("region", "ship_mode").
		OrderBy("region ASC", "revenue DESC")

	query, args, err := regionFilter(builder, regions).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ship mode breakdown: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.ShipModePerformance, 0)
	for rows.Next() {
		row := &domain.ShipModePerformance{}
		err := rows.Scan(&row.Region, &row.ShipMode, &row.Orders, &row.Revenue, &row.AvgMargin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ship mode breakdown: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *regionAnalyticsRepository) TopCities(regions []string, limit uint64) ([]*domain.CityRevenue, error) {
	builder := squirrel.
		Select(
			"city",
			"state",
			"region",
			"COUNT(*) as orders",
			"ROUND(SUM(sale_price)::numeric, 2) as revenue",
		).
		From(ordersTable).
		GroupBy("city", "state", "region").
		OrderBy("revenue DESC").
		Limit(limit)

	query, args, err := regionFilter(builder, regions).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top cities: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.CityRevenue, 0)
	for rows.Next() {
		row := &domain.CityRevenue{}
		err := rows.Scan(&row.City, &row.State, &row.Region, &row.Orders, &row.Revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top cities: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
