package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/pkg/utils"
)

// parseReportFilters reads the shared filter query parameters. Lists accept
// either repeated parameters or comma-separated values.
func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	query := r.URL.Query()

	filters := &domain.ReportFilters{
		Categories: parseListParam(query["category"]),
		Regions:    parseListParam(query["region"]),
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	filters.EndDate = endDate

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %q", yearStr)
		}
		filters.Year = year
	}

	return filters, nil
}

func parseListParam(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseRegionsParam(r *http.Request) []string {
	return parseListParam(r.URL.Query()["region"])
}

// parseLimitParam returns 0 when the parameter is absent so the service can
// apply its default.
func parseLimitParam(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit: %q", limitStr)
	}

	return limit, nil
}

// parseMetricParam defaults to revenue when the parameter is absent.
func parseMetricParam(r *http.Request) domain.Metric {
	metricStr := r.URL.Query().Get("metric")
	if metricStr == "" {
		return domain.MetricRevenue
	}
	return domain.Metric(strings.ToLower(metricStr))
}
