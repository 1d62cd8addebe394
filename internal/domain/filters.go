package domain

import "time"

// Metric selects which aggregate a time-series query computes.
type Metric string

const (
	MetricRevenue Metric = "revenue"
	MetricProfit  Metric = "profit"
	MetricOrders  Metric = "orders"
)

func (m Metric) Valid() bool {
	switch m {
	case MetricRevenue, MetricProfit, MetricOrders:
		return true
	}
	return false
}

// ReportFilters narrows the analytics queries. Zero values mean "no filter".
type ReportFilters struct {
	Categories []string
	Regions    []string
	StartDate  *time.Time
	EndDate    *time.Time
	Year       int
}
