package handler

import (
	"net/http"

	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
)

// GetSummary serves the headline dashboard numbers.
func GetSummary(service reporting.SummaryReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetSummary()
		if err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to load summary stats")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if summary == nil {
			logger.Info("summary: no orders loaded yet")
			http.Error(w, "no order data loaded", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFilterOptions serves the distinct filter values the dashboard offers.
func GetFilterOptions(service reporting.SummaryReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.GetFilterOptions()
		if err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to load filter options")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetOverview bundles the landing page panels in one response.
func GetOverview(service reporting.SummaryReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.GetOverview()
		if err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to load overview")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
