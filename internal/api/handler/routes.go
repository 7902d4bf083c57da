package handler

import (
	"net/http"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/api/handler/router"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/internal/usecases/authenticating"
	"github.com/centralia/sales-api/internal/usecases/dashboard"
	"github.com/centralia/sales-api/internal/usecases/notice"
	"github.com/centralia/sales-api/internal/usecases/pipeline"
	"github.com/centralia/sales-api/internal/usecases/rituals"
	"github.com/centralia/sales-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Leads(service *pipeline.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodPost,
			Handler:     CreateLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/stage",
			Method:      http.MethodPut,
			Handler:     MoveLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/pipeline/metrics",
			Method:      http.MethodGet,
			Handler:     GetPipelineMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Alerts(
	alertService *alerting.Service,
	board *notice.Board,
	dashboardService *dashboard.Service,
	digestRepo repository.AlertDigestRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     GetNotifications(alertService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notices",
			Method:      http.MethodGet,
			Handler:     GetNotices(board),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(dashboardService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/digests",
			Method:      http.MethodGet,
			Handler:     ListAlertDigests(digestRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Rituals(service *rituals.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meetings",
			Method:      http.MethodGet,
			Handler:     ListMeetings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meetings",
			Method:      http.MethodPost,
			Handler:     CreateMeeting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/meetings/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateMeetingStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/coaching-sessions",
			Method:      http.MethodGet,
			Handler:     ListCoachingSessions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/coaching-sessions",
			Method:      http.MethodPost,
			Handler:     CreateCoachingSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/coaching-sessions/stats",
			Method:      http.MethodGet,
			Handler:     GetCommitmentStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/coaching-sessions/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateCoachingSessionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
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
