package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportFilters(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, filters *domain.ReportFilters, err error)
	}{
		{
			name:   "no parameters mean no filters",
			target: "/v1/products/categories",
			validate: func(t *testing.T, filters *domain.ReportFilters, err error) {
				require.NoError(t, err)
				assert.Nil(t, filters.Categories)
				assert.Nil(t, filters.Regions)
				assert.Nil(t, filters.StartDate)
				assert.Nil(t, filters.EndDate)
				assert.Zero(t, filters.Year)
			},
		},
		{
			name:   "repeated and comma-separated lists are merged",
			target: "/v1/products/categories?category=Furniture&category=Technology,Office%20Supplies&region=West",
			validate: func(t *testing.T, filters *domain.ReportFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Furniture", "Technology", "Office Supplies"}, filters.Categories)
				assert.Equal(t, []string{"West"}, filters.Regions)
			},
		},
		{
			name:   "date window and year are parsed",
			target: "/v1/products/categories?start_date=2023-01-01&end_date=2023-06-30&year=2023",
			validate: func(t *testing.T, filters *domain.ReportFilters, err error) {
				require.NoError(t, err)
				assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
				assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), *filters.EndDate)
				assert.Equal(t, 2023, filters.Year)
			},
		},
		{
			name:   "bad start date is an error",
			target: "/v1/products/categories?start_date=01/03/2023",
			validate: func(t *testing.T, filters *domain.ReportFilters, err error) {
				assert.Error(t, err)
				assert.Nil(t, filters)
			},
		},
		{
			name:   "non-numeric year is an error",
			target: "/v1/products/categories?year=twenty-three",
			validate: func(t *testing.T, filters *domain.ReportFilters, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			filters, err := parseReportFilters(r)
			tt.validate(t, filters, err)
		})
	}
}

func TestParseLimitParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/products/top", nil)
	limit, err := parseLimitParam(r)
	require.NoError(t, err)
	assert.Zero(t, limit)

	r = httptest.NewRequest("GET", "/v1/products/top?limit=25", nil)
	limit, err = parseLimitParam(r)
	require.NoError(t, err)
	assert.Equal(t, 25, limit)

	r = httptest.NewRequest("GET", "/v1/products/top?limit=-1", nil)
	_, err = parseLimitParam(r)
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/v1/products/top?limit=many", nil)
	_, err = parseLimitParam(r)
	assert.Error(t, err)
}

func TestParseMetricParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/trends/monthly-metric", nil)
	assert.Equal(t, domain.MetricRevenue, parseMetricParam(r))

	r = httptest.NewRequest("GET", "/v1/trends/monthly-metric?metric=PROFIT", nil)
	assert.Equal(t, domain.MetricProfit, parseMetricParam(r))

	r = httptest.NewRequest("GET", "/v1/trends/monthly-metric?metric=discount", nil)
	assert.False(t, parseMetricParam(r).Valid())
}
