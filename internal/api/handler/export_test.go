package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportRegionalPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regionRepo := mocks.NewMockRegionAnalyticsRepository(ctrl)
	regionRepo.EXPECT().
		RegionalOverview([]string{"West", "South"}).
		Return([]*domain.RegionPerformance{
			{Region: "West", Orders: 3203, Revenue: 725457.82, Profit: 108418.45, AvgMargin: 14.94, RevenueShare: 31.58},
			{Region: "South", Orders: 1620, Revenue: 391721.91, Profit: 46749.43, AvgMargin: 11.93, RevenueShare: 17.05},
		}, nil)

	service := reporting.NewService(nil, nil, regionRepo, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/regional-performance?region=West,South", nil)
	rec := httptest.NewRecorder()

	ExportRegionalPerformance(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="regional_performance.csv"`, rec.Header().Get("Content-Disposition"))

	want := "region,orders,revenue,profit,avg_margin,revenue_share\n" +
		"West,3203,725457.82,108418.45,14.94,31.58\n" +
		"South,1620,391721.91,46749.43,11.93,17.05\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestExportRegionalPerformance_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regionRepo := mocks.NewMockRegionAnalyticsRepository(ctrl)
	regionRepo.EXPECT().
		RegionalOverview(nil).
		Return(nil, errors.New("timeout"))

	service := reporting.NewService(nil, nil, regionRepo, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/regional-performance", nil)
	rec := httptest.NewRecorder()

	ExportRegionalPerformance(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_003")
}
