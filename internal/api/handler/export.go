package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/apiErrors"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
)

// ExportCategoryPerformance streams the category breakdown as a CSV file.
func ExportCategoryPerformance(service reporting.ProductReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("export: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.CategoryPerformance(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to load category performance")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "failed to load category performance", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="category_performance.csv"`)

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"category", "orders", "units_sold", "revenue", "profit", "avg_margin"}); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write CSV header")
			return
		}

		for _, row := range results {
			record := []string{
				row.Category,
				strconv.Itoa(row.Orders),
				strconv.Itoa(row.UnitsSold),
				formatMoney(row.Revenue),
				formatMoney(row.Profit),
				formatMoney(row.AvgMargin),
			}
			if err := writer.Write(record); err != nil {
				logger.WithField("error", err.Error()).Error("export: failed to write CSV row")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to flush CSV")
		}
	})
}

// ExportRegionalPerformance streams the per-region totals as a CSV file.
func ExportRegionalPerformance(service reporting.RegionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.RegionalOverview(parseRegionsParam(r))
		if err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to load regional overview")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "failed to load regional performance", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="regional_performance.csv"`)

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"region", "orders", "revenue", "profit", "avg_margin", "revenue_share"}); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write CSV header")
			return
		}

		for _, row := range results {
			record := []string{
				row.Region,
				strconv.Itoa(row.Orders),
				formatMoney(row.Revenue),
				formatMoney(row.Profit),
				formatMoney(row.AvgMargin),
				formatMoney(row.RevenueShare),
			}
			if err := writer.Write(record); err != nil {
				logger.WithField("error", err.Error()).Error("export: failed to write CSV row")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to flush CSV")
		}
	})
}

// ExportMonthlyMetric streams the monthly metric series as a CSV file.
func ExportMonthlyMetric(service reporting.TimeSeriesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("export: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		metric := parseMetricParam(r)
		results, err := service.MonthlyMetric(metric, filters)
		if err != nil {
			writeReportError(w, logger, "export: failed to load monthly metric", err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="monthly_%s.csv"`, metric))

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"year", "month", "month_name", string(metric)}); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write CSV header")
			return
		}

		for _, row := range results {
			record := []string{
				strconv.Itoa(row.Year),
				strconv.Itoa(row.Month),
				row.MonthName,
				formatMoney(row.Value),
			}
			if err := writer.Write(record); err != nil {
				logger.WithField("error", err.Error()).Error("export: failed to write CSV row")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to flush CSV")
		}
	})
}

func formatMoney(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
