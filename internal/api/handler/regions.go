package handler

import (
	"net/http"

	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
)

// GetRegionalOverview serves per-region totals including revenue share.
func GetRegionalOverview(service reporting.RegionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.RegionalOverview(parseRegionsParam(r))
		if err != nil {
			writeReportError(w, logger, "regions: failed to load regional overview", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetStatePerformance serves the per-state breakdown. States with too few
// orders are filtered out by the repository.
func GetStatePerformance(service reporting.RegionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.StatePerformance(parseRegionsParam(r))
		if err != nil {
			writeReportError(w, logger, "regions: failed to load state performance", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetShipModeBreakdown serves order counts and revenue per shipping mode.
func GetShipModeBreakdown(service reporting.RegionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.ShipModeBreakdown(parseRegionsParam(r))
		if err != nil {
			writeReportError(w, logger, "regions: failed to load ship mode breakdown", err)
			return
		}

		writeJSON(w, logger, results)
	})
}

// GetTopCities serves the highest revenue cities.
func GetTopCities(service reporting.RegionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := parseLimitParam(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("regions: invalid limit parameter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := service.TopCities(parseRegionsParam(r), limit)
		if err != nil {
			writeReportError(w, logger, "regions: failed to load top cities", err)
			return
		}

		writeJSON(w, logger, results)
	})
}
