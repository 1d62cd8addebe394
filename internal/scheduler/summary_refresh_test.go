package scheduler

import (
	"errors"
	"sync"
	"testing"

	"github.com/lwisniewski/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSummaryRefreshService_refreshSummaryCache(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(summaryRepo *mocks.MockSummaryRepository)
		validate func(t *testing.T, service *SummaryRefreshService)
	}{
		{
			name: "successful refresh records the completion time",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					RefreshSummaryCache().
					Return(&domain.SummaryStats{TotalOrders: 9994, TotalRevenue: 1234567.89}, nil)
			},
			validate: func(t *testing.T, service *SummaryRefreshService) {
				assert.False(t, service.lastRefreshStartedAt.IsZero())
				assert.False(t, service.lastRefreshCompletedAt.IsZero())
				assert.Empty(t, service.lastRefreshError)
			},
		},
		{
			name: "failed refresh keeps the error for the status endpoint",
			setup: func(summaryRepo *mocks.MockSummaryRepository) {
				summaryRepo.EXPECT().
					RefreshSummaryCache().
					Return(nil, errors.New("deadlock detected"))
			},
			validate: func(t *testing.T, service *SummaryRefreshService) {
				assert.False(t, service.lastRefreshStartedAt.IsZero())
				assert.True(t, service.lastRefreshCompletedAt.IsZero())
				assert.Equal(t, "deadlock detected", service.lastRefreshError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			summaryRepo := mocks.NewMockSummaryRepository(ctrl)
			tt.setup(summaryRepo)

			service := &SummaryRefreshService{
				summaryRepo: summaryRepo,
			}

			service.refreshSummaryCache()
			tt.validate(t, service)
		})
	}
}

func TestSummaryRefreshService_refreshSummaryCache_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call is expected while another refresh holds the flag.
	summaryRepo := mocks.NewMockSummaryRepository(ctrl)

	service := &SummaryRefreshService{
		summaryRepo:    summaryRepo,
		refreshRunning: true,
	}

	service.refreshSummaryCache()

	assert.True(t, service.lastRefreshStartedAt.IsZero())
}

func TestSummaryRefreshService_refreshSummaryCache_ClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaryRepo := mocks.NewMockSummaryRepository(ctrl)
	summaryRepo.EXPECT().
		RefreshSummaryCache().
		Return(&domain.SummaryStats{TotalOrders: 1}, nil)

	service := &SummaryRefreshService{
		summaryRepo:      summaryRepo,
		lastRefreshError: "deadlock detected",
	}

	service.refreshSummaryCache()

	assert.Empty(t, service.lastRefreshError)
}

func TestSummaryRefreshService_StatusReadsDuringConcurrentRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaryRepo := mocks.NewMockSummaryRepository(ctrl)
	summaryRepo.EXPECT().
		RefreshSummaryCache().
		Return(&domain.SummaryStats{TotalOrders: 9994}, nil).
		AnyTimes()

	service := &SummaryRefreshService{
		summaryRepo: summaryRepo,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.refreshSummaryCache()
		}()
		go func() {
			defer wg.Done()
			status := service.GetStatus()
			_, ok := status["last_refresh_error"].(string)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, "", status["last_refresh_error"])
}

func TestSummaryRefreshService_GetStatus(t *testing.T) {
	service := &SummaryRefreshService{
		config: SummaryRefreshConfig{
			CronSchedule: "0 3 * * *",
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, "0 3 * * *", status["refresh_cron"])
	assert.Equal(t, "", status["last_refresh_error"])
}
