package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/internal/scheduler"
	"github.com/lwisniewski/retail-analytics-api/pkg/apiErrors"
	"github.com/lwisniewski/retail-analytics-api/pkg/middleware"
)

const (
	CronJobTypeSummaryRefresh = "summary-refresh"
	CronJobTypeAll            = "all"
)

// CronJobServices carries the schedulers the cron endpoints control.
type CronJobServices struct {
	SummaryRefreshService *scheduler.SummaryRefreshService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators may run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeSummaryRefresh, CronJobTypeAll:
			if services.SummaryRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "summary refresh service is not available", nil)
				return
			}
			services.SummaryRefreshService.TriggerManualRefresh()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: summary-refresh, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of the scheduled jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators may check cron status", nil)
			return
		}

		status := map[string]any{
			"summary-refresh": services.SummaryRefreshService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
