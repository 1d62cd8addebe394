package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

// applyReportFilters narrows an orders query by the dashboard filters.
// Values are always bound as placeholders, never interpolated.
func applyReportFilters(builder squirrel.SelectBuilder, filters *domain.ReportFilters) squirrel.SelectBuilder {
	if filters == nil {
		return builder
	}

	if len(filters.Categories) > 0 {
		builder = builder.Where(squirrel.Eq{"category": filters.Categories})
	}

	if len(filters.Regions) > 0 {
		builder = builder.Where(squirrel.Eq{"region": filters.Regions})
	}

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"order_date": filters.StartDate.Format(time.DateOnly)})
	}

	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"order_date": filters.EndDate.Format(time.DateOnly)})
	}

	if filters.Year != 0 {
		builder = builder.Where(squirrel.Eq{"year": filters.Year})
	}

	return builder
}

// metricExpr maps the dashboard metric selector to its SQL aggregate.
// Metric is validated in the reporting service before it reaches a query.
func metricExpr(metric domain.Metric) string {
	switch metric {
	case domain.MetricProfit:
		return "SUM(profit)"
	case domain.MetricOrders:
		return "COUNT(*)"
	default:
		return "SUM(sale_price)"
	}
}
