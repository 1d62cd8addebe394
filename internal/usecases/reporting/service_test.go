package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_GetSummary(t *testing.T) {
	refreshedAt := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	stats := &domain.SummaryStats{
		TotalOrders:  9994,
		TotalRevenue: 1234567.89,
		TotalProfit:  98765.43,
	}

	tests := []struct {
		name     string
		setup    func(summaryRepo *mocks.MockSummaryRepository)
		validate func(t *testing.T, report *domain.SummaryReport, err error)
	}{
		{
			name: "cached summary is returned with provenance",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					GetCachedSummary().
					Return(stats, &refreshedAt, nil)
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				assert.NoError(t, err)
				assert.True(t, report.Cached)
				assert.Equal(t, stats, report.Stats)
				assert.Equal(t, &refreshedAt, report.RefreshedAt)
			},
		},
		{
			name: "cache read failure falls back to the live view",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					GetCachedSummary().
					Return(nil, nil, errors.New("relation summary_cache does not exist"))
				summaryRepo.EXPECT().
					GetSummaryStats().
					Return(stats, nil)
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				assert.NoError(t, err)
				assert.False(t, report.Cached)
				assert.Nil(t, report.RefreshedAt)
				assert.Equal(t, stats, report.Stats)
			},
		},
		{
			name: "empty orders table yields no report",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					GetCachedSummary().
					Return(nil, nil, nil)
				summaryRepo.EXPECT().
					GetSummaryStats().
					Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				assert.NoError(t, err)
				assert.Nil(t, report)
			},
		},
		{
			name: "live view failure is returned",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					GetCachedSummary().
					Return(nil, nil, nil)
				summaryRepo.EXPECT().
					GetSummaryStats().
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				assert.Error(t, err)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			summaryRepo := mocks.NewMockSummaryRepository(ctrl)
			tt.setup(summaryRepo)

			service := &Service{summaryRepo: summaryRepo}

			report, err := service.GetSummary()
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaryRepo := mocks.NewMockSummaryRepository(ctrl)
	productRepo := mocks.NewMockProductAnalyticsRepository(ctrl)
	regionRepo := mocks.NewMockRegionAnalyticsRepository(ctrl)
	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)

	stats := &domain.SummaryStats{TotalOrders: 100, TotalRevenue: 5000}
	trend := []*domain.MonthlyRevenuePoint{
		{Month: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: 5000, Profit: 400},
	}
	products := []*domain.ProductRevenue{
		{ProductID: "TEC-PHO-10001", Category: "Technology", Revenue: 3000},
	}

	summaryRepo.EXPECT().GetCachedSummary().Return(stats, nil, nil)
	timeSeriesRepo.EXPECT().MonthlyRevenueTrend().Return(trend, nil)
	productRepo.EXPECT().
		ProductsByRevenue(gomock.Any(), uint64(defaultProductLimit), false).
		Return(products, nil)
	regionRepo.EXPECT().
		RegionalOverview(nil).
		Return(nil, errors.New("timeout"))

	service := &Service{
		summaryRepo:    summaryRepo,
		productRepo:    productRepo,
		regionRepo:     regionRepo,
		timeSeriesRepo: timeSeriesRepo,
	}

	overview, err := service.GetOverview()

	assert.NoError(t, err)
	assert.Equal(t, stats, overview.Summary.Stats)
	assert.Equal(t, trend, overview.MonthlyTrend)
	assert.Equal(t, products, overview.TopProducts)
	// A failed panel stays empty instead of failing the page.
	assert.Empty(t, overview.Regions)
}

func TestService_GetOverview_SummaryFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaryRepo := mocks.NewMockSummaryRepository(ctrl)
	productRepo := mocks.NewMockProductAnalyticsRepository(ctrl)
	regionRepo := mocks.NewMockRegionAnalyticsRepository(ctrl)
	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)

	summaryRepo.EXPECT().GetCachedSummary().Return(nil, nil, nil)
	summaryRepo.EXPECT().GetSummaryStats().Return(nil, errors.New("connection refused"))
	timeSeriesRepo.EXPECT().MonthlyRevenueTrend().Return(nil, nil)
	productRepo.EXPECT().
		ProductsByRevenue(gomock.Any(), uint64(defaultProductLimit), false).
		Return(nil, nil)
	regionRepo.EXPECT().RegionalOverview(nil).Return(nil, nil)

	service := &Service{
		summaryRepo:    summaryRepo,
		productRepo:    productRepo,
		regionRepo:     regionRepo,
		timeSeriesRepo: timeSeriesRepo,
	}

	overview, err := service.GetOverview()

	assert.Error(t, err)
	assert.Nil(t, overview)
}

func TestService_CompareYears(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		setup    func(timeSeriesRepo *mocks.MockTimeSeriesRepository)
		validate func(t *testing.T, comparison *domain.YearComparison, err error)
	}{
		{
			name: "deltas are derived from both years",
			year: 2023,
			setup: func(timeSeriesRepo *mocks.MockTimeSeriesRepository) {
				timeSeriesRepo.EXPECT().
					YearKPIs(2023).
					Return(&domain.YearKPIs{Year: 2023, Orders: 550, Revenue: 1200, Profit: 110}, nil)
				timeSeriesRepo.EXPECT().
					YearKPIs(2022).
					Return(&domain.YearKPIs{Year: 2022, Orders: 500, Revenue: 1000, Profit: 100}, nil)
			},
			validate: func(t *testing.T, comparison *domain.YearComparison, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2023, comparison.Current.Year)
				assert.Equal(t, 2022, comparison.Previous.Year)
				assert.InDelta(t, 20.0, *comparison.RevenueDelta, 0.001)
				assert.InDelta(t, 10.0, *comparison.ProfitDelta, 0.001)
				assert.InDelta(t, 10.0, *comparison.OrdersDelta, 0.001)
			},
		},
		{
			name: "previous year without orders leaves the deltas nil",
			year: 2023,
			setup: func(timeSeriesRepo *mocks.MockTimeSeriesRepository) {
				timeSeriesRepo.EXPECT().
					YearKPIs(2023).
					Return(&domain.YearKPIs{Year: 2023, Orders: 550, Revenue: 1200}, nil)
				timeSeriesRepo.EXPECT().
					YearKPIs(2022).
					Return(&domain.YearKPIs{Year: 2022}, nil)
			},
			validate: func(t *testing.T, comparison *domain.YearComparison, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, comparison.Current)
				assert.Nil(t, comparison.RevenueDelta)
				assert.Nil(t, comparison.ProfitDelta)
				assert.Nil(t, comparison.OrdersDelta)
			},
		},
		{
			name: "previous year lookup failure degrades to current only",
			year: 2023,
			setup: func(timeSeriesRepo *mocks.MockTimeSeriesRepository) {
				timeSeriesRepo.EXPECT().
					YearKPIs(2023).
					Return(&domain.YearKPIs{Year: 2023, Orders: 550, Revenue: 1200}, nil)
				timeSeriesRepo.EXPECT().
					YearKPIs(2022).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, comparison *domain.YearComparison, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, comparison.Current)
				assert.Nil(t, comparison.Previous)
				assert.Nil(t, comparison.RevenueDelta)
			},
		},
		{
			name:  "out of range year is rejected before any query",
			year:  1850,
			setup: func(timeSeriesRepo *mocks.MockTimeSeriesRepository) {},
			validate: func(t *testing.T, comparison *domain.YearComparison, err error) {
				assert.ErrorIs(t, err, ErrInvalidYear)
				assert.Nil(t, comparison)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)
			tt.setup(timeSeriesRepo)

			service := &Service{timeSeriesRepo: timeSeriesRepo}

			comparison, err := service.CompareYears(tt.year)
			tt.validate(t, comparison, err)
		})
	}
}

func TestService_TopProducts_LimitClamping(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit uint64
	}{
		{name: "zero limit uses the default", limit: 0, expectedLimit: defaultProductLimit},
		{name: "negative limit uses the default", limit: -3, expectedLimit: defaultProductLimit},
		{name: "limit within range is kept", limit: 25, expectedLimit: 25},
		{name: "oversized limit is capped", limit: 500, expectedLimit: maxProductLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductAnalyticsRepository(ctrl)
			productRepo.EXPECT().
				ProductsByRevenue(gomock.Any(), tt.expectedLimit, false).
				Return([]*domain.ProductRevenue{}, nil)

			service := &Service{productRepo: productRepo}

			_, err := service.TopProducts(nil, tt.limit)
			assert.NoError(t, err)
		})
	}
}

func TestService_BottomProducts_QueriesAscending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductAnalyticsRepository(ctrl)
	productRepo.EXPECT().
		ProductsByRevenue(gomock.Any(), uint64(5), true).
		Return([]*domain.ProductRevenue{}, nil)

	service := &Service{productRepo: productRepo}

	_, err := service.BottomProducts(nil, 5)
	assert.NoError(t, err)
}

func TestService_TopCities_LimitClamping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regionRepo := mocks.NewMockRegionAnalyticsRepository(ctrl)
	regionRepo.EXPECT().
		TopCities([]string{"West"}, uint64(maxCityLimit)).
		Return([]*domain.CityRevenue{}, nil)

	service := &Service{regionRepo: regionRepo}

	_, err := service.TopCities([]string{"West"}, 9999)
	assert.NoError(t, err)
}

func TestService_MonthlyMetric_RejectsUnknownMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)

	service := &Service{timeSeriesRepo: timeSeriesRepo}

	_, err := service.MonthlyMetric(domain.Metric("discount"), nil)
	assert.ErrorIs(t, err, ErrInvalidMetric)
}

func TestService_YearOverYearByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)
	timeSeriesRepo.EXPECT().
		YearOverYearByMonth(domain.MetricRevenue, gomock.Any()).
		Return([]*domain.MonthlyMetricPoint{
			{Year: 2022, Month: 1, MonthName: "January", Value: 95000},
			{Year: 2023, Month: 1, MonthName: "January", Value: 98250.75},
			{Year: 2022, Month: 2, MonthName: "February", Value: 91000},
		}, nil)

	service := &Service{timeSeriesRepo: timeSeriesRepo}

	points, err := service.YearOverYearByMonth(domain.MetricRevenue, nil)
	assert.NoError(t, err)
	assert.Len(t, points, 3)
	// Month-first ordering keeps the same month's years adjacent.
	assert.Equal(t, 2022, points[0].Year)
	assert.Equal(t, 2023, points[1].Year)
	assert.Equal(t, 1, points[1].Month)
	assert.Equal(t, 2, points[2].Month)
}

func TestService_YearOverYearByMonth_RejectsUnknownMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)

	service := &Service{timeSeriesRepo: timeSeriesRepo}

	_, err := service.YearOverYearByMonth(domain.Metric("discount"), nil)
	assert.ErrorIs(t, err, ErrInvalidMetric)
}

func TestService_QuarterlyPerformance_ValidMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	timeSeriesRepo := mocks.NewMockTimeSeriesRepository(ctrl)
	timeSeriesRepo.EXPECT().
		QuarterlyPerformance(domain.MetricProfit, gomock.Any()).
		Return([]*domain.QuarterPerformance{
			{Year: 2023, Quarter: 1, Value: 1500.50, Orders: 120},
		}, nil)

	service := &Service{timeSeriesRepo: timeSeriesRepo}

	quarters, err := service.QuarterlyPerformance(domain.MetricProfit, nil)
	assert.NoError(t, err)
	assert.Len(t, quarters, 1)
	assert.Equal(t, 1, quarters[0].Quarter)
}

func TestValidateFilters(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *domain.ReportFilters
		wantErr error
	}{
		{name: "nil filters pass", filters: nil},
		{name: "empty filters pass", filters: &domain.ReportFilters{}},
		{
			name:    "start after end is rejected",
			filters: &domain.ReportFilters{StartDate: &start, EndDate: &end},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "year out of range is rejected",
			filters: &domain.ReportFilters{Year: 2500},
			wantErr: ErrInvalidYear,
		},
		{
			name:    "valid window passes",
			filters: &domain.ReportFilters{StartDate: &end, EndDate: &start, Year: 2023},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilters(tt.filters)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
