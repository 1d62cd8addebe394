package handler

import (
	"net/http"

	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
)

// GetCategoryPerformance serves revenue, profit and margin per category.
func GetCategoryPerformance(service reporting.ProductReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("products: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.CategoryPerformance(filters)
		if err != nil {
			writeReportError(w, logger, "products: failed to load category performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetSubCategoryPerformance serves the category/sub-category breakdown.
func GetSubCategoryPerformance(service reporting.ProductReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("products: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.SubCategoryPerformance(filters)
		if err != nil {
			writeReportError(w, logger, "products: failed to load sub-category performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetTopProducts serves the best selling products by revenue.
func GetTopProducts(service reporting.ProductReporter) http.Handler {
	return productRankingHandler(service, false)
}

// GetBottomProducts serves the worst selling products by revenue.
func GetBottomProducts(service reporting.ProductReporter) http.Handler {
	return productRankingHandler(service, true)
}

func productRankingHandler(service reporting.ProductReporter, ascending bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("products: invalid filter parameters")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		limit, err := parseLimitParam(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("products: invalid limit parameter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var results any
		if ascending {
			results, err = service.BottomProducts(filters, limit)
		} else {
			results, err = service.TopProducts(filters, limit)
		}
		if err != nil {
			writeReportError(w, logger, "products: failed to load product ranking", err)
			return
		}

		writeJSON(w, logger, results)
	})
}
