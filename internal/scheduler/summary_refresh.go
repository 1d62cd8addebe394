package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository"
	"github.com/lwisniewski/retail-analytics-api/internal/config"
	"github.com/sirupsen/logrus"
)

// SummaryRefreshConfig holds the cron settings for the summary cache job.
type SummaryRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SummaryRefreshService re-materializes the order summary cache on a cron
// schedule so the dashboard landing page never pays for the full aggregate.
type SummaryRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 SummaryRefreshConfig
	summaryRepo            repository.SummaryRepository
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

func NewSummaryRefreshService(
	summaryRepo repository.SummaryRepository,
	appConfig *config.Config,
) *SummaryRefreshService {
	refreshConfig := SummaryRefreshConfig{
		CronSchedule: appConfig.SummaryRefresh.CronSchedule,
		Enabled:      appConfig.SummaryRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Summary refresh scheduler configuration loaded")

	return &SummaryRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		summaryRepo:    summaryRepo,
		refreshRunning: false,
	}
}

// Start schedules the refresh job and stops the scheduler when the context
// is cancelled.
func (s *SummaryRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Summary cache refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting summary cache refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSummaryCache()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule summary cache refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping summary cache refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SummaryRefreshService) refreshSummaryCache() {
	startTime := time.Now()

	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Summary cache refresh already running, skipping")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = startTime
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Refreshing order summary cache")

	stats, err := s.summaryRepo.RefreshSummaryCache()

	s.refreshMutex.Lock()
	if err != nil {
		s.lastRefreshError = err.Error()
	} else {
		s.lastRefreshError = ""
		s.lastRefreshCompletedAt = time.Now()
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Failed to refresh order summary cache")
		return
	}

	fields := logrus.Fields{
		"duration": time.Since(startTime).String(),
	}
	if stats != nil {
		fields["total_orders"] = stats.TotalOrders
		fields["total_revenue"] = stats.TotalRevenue
	}
	logrus.WithFields(fields).Info("Order summary cache refreshed")
}

// TriggerManualRefresh runs the refresh outside the cron schedule, e.g.
// right after an ETL load.
func (s *SummaryRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Summary cache refresh already running, ignoring manual trigger")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Starting manual summary cache refresh")
	go s.refreshSummaryCache()
}

// GetStatus reports the scheduler state for the cron status endpoint. The
// refresh runs on its own goroutine, so the fields are read under the lock.
func (s *SummaryRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
