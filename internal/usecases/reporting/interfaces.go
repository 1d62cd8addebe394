package reporting

import (
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

// SummaryReporter serves the headline numbers and the filter values the
// dashboard offers.
type SummaryReporter interface {
	// GetSummary returns the cached snapshot when one exists and falls
	// back to a live read of the summary view.
	GetSummary() (*domain.SummaryReport, error)

	// GetFilterOptions lists the distinct categories, regions, segments,
	// years and the order date range.
	GetFilterOptions() (*domain.FilterOptions, error)

	// GetOverview bundles the landing page panels in one call.
	GetOverview() (*domain.DashboardOverview, error)
}

// ProductReporter serves the product and category breakdowns.
type ProductReporter interface {
	CategoryPerformance(filters *domain.ReportFilters) ([]*domain.CategoryPerformance, error)
	SubCategoryPerformance(filters *domain.ReportFilters) ([]*domain.SubCategoryPerformance, error)

	// TopProducts ranks products by revenue, best first.
	TopProducts(filters *domain.ReportFilters, limit int) ([]*domain.ProductRevenue, error)

	// BottomProducts ranks products by revenue, worst first.
	BottomProducts(filters *domain.ReportFilters, limit int) ([]*domain.ProductRevenue, error)
}

// RegionReporter serves the geographic breakdowns. An empty regions slice
// means all regions.
type RegionReporter interface {
	RegionalOverview(regions []string) ([]*domain.RegionPerformance, error)
	StatePerformance(regions []string) ([]*domain.StatePerformance, error)
	ShipModeBreakdown(regions []string) ([]*domain.ShipModePerformance, error)
	TopCities(regions []string, limit int) ([]*domain.CityRevenue, error)
}

// TimeSeriesReporter serves the trend and period comparisons.
type TimeSeriesReporter interface {
	MonthlyRevenueTrend() ([]*domain.MonthlyRevenuePoint, error)
	YearKPIs(year int) (*domain.YearKPIs, error)

	// CompareYears pairs a year's KPIs with the previous year's.
	CompareYears(year int) (*domain.YearComparison, error)

	YearlyPerformance() ([]*domain.YearlyPerformance, error)
	SegmentPerformance() ([]*domain.SegmentPerformance, error)
	MonthlyMetric(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error)

	// YearOverYearByMonth returns the metric per calendar month for every
	// year, ordered so each month's years are adjacent.
	YearOverYearByMonth(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error)

	QuarterlyPerformance(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.QuarterPerformance, error)
	CategoryQuarterlyRevenue() ([]*domain.CategoryQuarterRevenue, error)
	YearlyGrowth() ([]*domain.YearlyGrowth, error)
}

// CombinedReporter is the full reporting surface the API handlers depend on.
type CombinedReporter interface {
	SummaryReporter
	ProductReporter
	RegionReporter
	TimeSeriesReporter
}
