package handler

import (
	"net/http"

	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/log"
	"github.com/pkg/errors"
)

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeReportError distinguishes bad filter input from database failures.
func writeReportError(w http.ResponseWriter, logger log.Logger, message string, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidMetric),
		errors.Is(err, reporting.ErrInvalidDateRange),
		errors.Is(err, reporting.ErrInvalidYear):
		logger.WithField("error", err.Error()).Warn(message)
		http.Error(w, err.Error(), http.StatusBadRequest)

	default:
		logger.WithField("error", err.Error()).Error(message)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
