package handler

import (
	"io/fs"
	"net/http"

	"github.com/lwisniewski/retail-analytics-api/internal/api/handler/router"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/authenticating"
	"github.com/lwisniewski/retail-analytics-api/internal/usecases/reporting"
	"github.com/lwisniewski/retail-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Summary(service reporting.SummaryReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service reporting.ProductReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/sub-categories",
			Method:      http.MethodGet,
			Handler:     GetSubCategoryPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/top",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/bottom",
			Method:      http.MethodGet,
			Handler:     GetBottomProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Regions(service reporting.RegionReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/regions/overview",
			Method:      http.MethodGet,
			Handler:     GetRegionalOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/regions/states",
			Method:      http.MethodGet,
			Handler:     GetStatePerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/regions/ship-modes",
			Method:      http.MethodGet,
			Handler:     GetShipModeBreakdown(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/regions/cities",
			Method:      http.MethodGet,
			Handler:     GetTopCities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func TimeSeries(service reporting.TimeSeriesReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/trends/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/monthly-metric",
			Method:      http.MethodGet,
			Handler:     GetMonthlyMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/yoy-monthly",
			Method:      http.MethodGet,
			Handler:     GetYearOverYearByMonth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/quarterly",
			Method:      http.MethodGet,
			Handler:     GetQuarterlyPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/category-quarterly",
			Method:      http.MethodGet,
			Handler:     GetCategoryQuarterlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/years",
			Method:      http.MethodGet,
			Handler:     GetYearlyPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/growth",
			Method:      http.MethodGet,
			Handler:     GetYearlyGrowth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/years/:year",
			Method:      http.MethodGet,
			Handler:     GetYearKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/years/:year/comparison",
			Method:      http.MethodGet,
			Handler:     GetYearComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/segments",
			Method:      http.MethodGet,
			Handler:     GetSegmentPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Exports(
	productService reporting.ProductReporter,
	regionService reporting.RegionReporter,
	timeSeriesService reporting.TimeSeriesReporter,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports/category-performance",
			Method:      http.MethodGet,
			Handler:     ExportCategoryPerformance(productService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/exports/regional-performance",
			Method:      http.MethodGet,
			Handler:     ExportRegionalPerformance(regionService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/exports/monthly-metric",
			Method:      http.MethodGet,
			Handler:     ExportMonthlyMetric(timeSeriesService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Dashboard serves the embedded front end.
func Dashboard(assets fs.FS) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardIndex(assets),
		},
		{
			Path:    "/assets/*filepath",
			Method:  http.MethodGet,
			Handler: DashboardAssets(assets),
		},
	}
}
