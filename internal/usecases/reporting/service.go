package reporting

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	defaultProductLimit = 10
	maxProductLimit     = 50
	defaultCityLimit    = 10
	maxCityLimit        = 50
)

var (
	ErrInvalidMetric    = errors.New("metric must be one of: revenue, profit, orders")
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
	ErrInvalidYear      = errors.New("year is out of range")
)

// Service implements CombinedReporter on top of the analytics repositories.
type Service struct {
	summaryRepo    repository.SummaryRepository
	productRepo    repository.ProductAnalyticsRepository
	regionRepo     repository.RegionAnalyticsRepository
	timeSeriesRepo repository.TimeSeriesRepository
}

func NewService(
	summaryRepo repository.SummaryRepository,
	productRepo repository.ProductAnalyticsRepository,
	regionRepo repository.RegionAnalyticsRepository,
	timeSeriesRepo repository.TimeSeriesRepository,
) CombinedReporter {
	return &Service{
		summaryRepo:    summaryRepo,
		productRepo:    productRepo,
		regionRepo:     regionRepo,
		timeSeriesRepo: timeSeriesRepo,
	}
}

func (s *Service) GetSummary() (*domain.SummaryReport, error) {
	stats, refreshedAt, err := s.summaryRepo.GetCachedSummary()
	if err != nil {
		logrus.WithError(err).Warn("failed to read cached summary, falling back to live view")
	}

	if stats != nil {
		return &domain.SummaryReport{
			Stats:       stats,
			Cached:      true,
			RefreshedAt: refreshedAt,
		}, nil
	}

	stats, err = s.summaryRepo.GetSummaryStats()
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, nil
	}

	return &domain.SummaryReport{Stats: stats}, nil
}

func (s *Service) GetFilterOptions() (*domain.FilterOptions, error) {
	return s.summaryRepo.GetFilterOptions()
}

// GetOverview fetches the landing page panels concurrently. A panel that
// fails is logged and left empty rather than failing the whole page.
func (s *Service) GetOverview() (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{}

	var (
		summaryErr error
		trendErr   error
		productErr error
		regionErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		overview.Summary, summaryErr = s.GetSummary()
	}()

	go func() {
		defer wg.Done()
		overview.MonthlyTrend, trendErr = s.timeSeriesRepo.MonthlyRevenueTrend()
	}()

	go func() {
		defer wg.Done()
		overview.TopProducts, productErr = s.productRepo.ProductsByRevenue(&domain.ReportFilters{}, defaultProductLimit, false)
	}()

	go func() {
		defer wg.Done()
		overview.Regions, regionErr = s.regionRepo.RegionalOverview(nil)
	}()

	wg.Wait()

	if summaryErr != nil {
		return nil, summaryErr
	}

	for _, err := range []error{trendErr, productErr, regionErr} {
		if err != nil {
			logrus.WithError(err).Warn("failed to load an overview panel")
		}
	}

	return overview, nil
}

func (s *Service) CategoryPerformance(filters *domain.ReportFilters) ([]*domain.CategoryPerformance, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.productRepo.CategoryPerformance(filters)
}

func (s *Service) SubCategoryPerformance(filters *domain.ReportFilters) ([]*domain.SubCategoryPerformance, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.productRepo.SubCategoryPerformance(filters)
}

func (s *Service) TopProducts(filters *domain.ReportFilters, limit int) ([]*domain.ProductRevenue, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.productRepo.ProductsByRevenue(filters, clampLimit(limit, defaultProductLimit, maxProductLimit), false)
}

func (s *Service) BottomProducts(filters *domain.ReportFilters, limit int) ([]*domain.ProductRevenue, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.productRepo.ProductsByRevenue(filters, clampLimit(limit, defaultProductLimit, maxProductLimit), true)
}

func (s *Service) RegionalOverview(regions []string) ([]*domain.RegionPerformance, error) {
	return s.regionRepo.RegionalOverview(regions)
}

func (s *Service) StatePerformance(regions []string) ([]*domain.StatePerformance, error) {
	return s.regionRepo.StatePerformance(regions)
}

func (s *Service) ShipModeBreakdown(regions []string) ([]*domain.ShipModePerformance, error) {
	return s.regionRepo.ShipModeBreakdown(regions)
}

func (s *Service) TopCities(regions []string, limit int) ([]*domain.CityRevenue, error) {
	return s.regionRepo.TopCities(regions, clampLimit(limit, defaultCityLimit, maxCityLimit))
}

func (s *Service) MonthlyRevenueTrend() ([]*domain.MonthlyRevenuePoint, error) {
	return s.timeSeriesRepo.MonthlyRevenueTrend()
}

func (s *Service) YearKPIs(year int) (*domain.YearKPIs, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return s.timeSeriesRepo.YearKPIs(year)
}

// CompareYears loads the KPIs for the given year and the one before it in
// parallel and derives the percentage deltas.
func (s *Service) CompareYears(year int) (*domain.YearComparison, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	var (
		current, previous       *domain.YearKPIs
		currentErr, previousErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.timeSeriesRepo.YearKPIs(year)
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.timeSeriesRepo.YearKPIs(year - 1)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if previousErr != nil {
		logrus.WithError(previousErr).WithField("year", year-1).Warn("failed to load previous year KPIs")
		previous = nil
	}

	comparison := &domain.YearComparison{
		Current:  current,
		Previous: previous,
	}

	if current != nil && previous != nil && previous.Orders > 0 {
		comparison.RevenueDelta = percentDelta(current.Revenue, previous.Revenue)
		comparison.ProfitDelta = percentDelta(current.Profit, previous.Profit)
		comparison.OrdersDelta = percentDelta(float64(current.Orders), float64(previous.Orders))
	}

	return comparison, nil
}

func (s *Service) YearlyPerformance() ([]*domain.YearlyPerformance, error) {
	return s.timeSeriesRepo.YearlyPerformance()
}

func (s *Service) SegmentPerformance() ([]*domain.SegmentPerformance, error) {
	return s.timeSeriesRepo.SegmentPerformance()
}

func (s *Service) MonthlyMetric(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.timeSeriesRepo.MonthlyMetric(metric, filters)
}

func (s *Service) YearOverYearByMonth(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.MonthlyMetricPoint, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.timeSeriesRepo.YearOverYearByMonth(metric, filters)
}

func (s *Service) QuarterlyPerformance(metric domain.Metric, filters *domain.ReportFilters) ([]*domain.QuarterPerformance, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	return s.timeSeriesRepo.QuarterlyPerformance(metric, filters)
}

func (s *Service) CategoryQuarterlyRevenue() ([]*domain.CategoryQuarterRevenue, error) {
	return s.timeSeriesRepo.CategoryQuarterlyRevenue()
}

func (s *Service) YearlyGrowth() ([]*domain.YearlyGrowth, error) {
	return s.timeSeriesRepo.YearlyGrowth()
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil {
		return nil
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return ErrInvalidDateRange
	}

	if filters.Year != 0 {
		if err := validateYear(filters.Year); err != nil {
			return err
		}
	}

	return nil
}

func validateYear(year int) error {
	if year < 1900 || year > 2200 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}

func clampLimit(limit, fallback, max int) uint64 {
	if limit <= 0 {
		limit = fallback
	}
	if limit > max {
		limit = max
	}
	return uint64(limit)
}

func percentDelta(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	delta := utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	return &delta
}
