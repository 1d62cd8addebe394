package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
)

// GetMonthlyTrend serves revenue and profit per calendar month.
func GetMonthlyTrend(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.MonthlyRevenueTrend()
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load monthly trend", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetYearKPIs serves the headline numbers for one year.
func GetYearKPIs(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("timeseries: invalid year parameter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		kpis, err := service.YearKPIs(year)
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load year KPIs", err)
			return
		}

		writeJSON(w, logger, kpis)
	})
}

// GetYearComparison serves year-over-year KPI deltas.
func GetYearComparison(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseYearParam(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("timeseries: invalid year parameter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		comparison, err := service.CompareYears(year)
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to compare years", err)
			return
		}

		writeJSON(w, logger, comparison)
	})
}

// GetYearlyPerformance serves totals for every year on record.
func GetYearlyPerformance(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.YearlyPerformance()
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load yearly performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetSegmentPerformance serves totals per customer segment.
func GetSegmentPerformance(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.SegmentPerformance()
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load segment performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetMonthlyMetric serves the selected metric aggregated by month. The
// metric defaults to revenue.
func GetMonthlyMetric(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("timeseries: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.MonthlyMetric(parseMetricParam(r), filters)
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load monthly metric", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetYearOverYearByMonth serves the selected metric per calendar month
// across years, for month-on-month year comparisons.
func GetYearOverYearByMonth(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("timeseries: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.YearOverYearByMonth(parseMetricParam(r), filters)
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load year-over-year by month", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetQuarterlyPerformance serves the selected metric aggregated by quarter.
func GetQuarterlyPerformance(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("timeseries: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.QuarterlyPerformance(parseMetricParam(r), filters)
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load quarterly performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetCategoryQuarterlyRevenue serves per-category revenue by quarter for
// the stacked trend chart.
func GetCategoryQuarterlyRevenue(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.CategoryQuarterlyRevenue()
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load category quarterly revenue", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetYearlyGrowth serves year-over-year revenue growth.
func GetYearlyGrowth(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.YearlyGrowth()
		if err != nil {
			writeReportError(w, logger, "timeseries: failed to load yearly growth", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

func parseYearParam(r *http.Request) (int, error) {
	yearStr := httprouter.ParamsFromContext(r.Context()).ByName("year")
	return strconv.Atoi(yearStr)
}
