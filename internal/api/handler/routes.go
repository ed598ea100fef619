package handler

import (
	"net/http"

	"github.com/vfg2006/lead-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	"github.com/vfg2006/lead-intelligence-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// PublicLeads são as rotas do formulário público, limitadas por IP
func PublicLeads(reconciler reconciling.Reconciler, analyzer analysing.Analyzer, limiter *middleware.IPRateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads",
			Method:      http.MethodPost,
			Handler:     SubmitLead(reconciler),
			Middlewares: []router.Middleware{limiter.RateLimit()},
		},
		{
			Path:        "/v1/analysis",
			Method:      http.MethodPost,
			Handler:     Analyze(analyzer),
			Middlewares: []router.Middleware{limiter.RateLimit()},
		},
	}
}

func Leads(service prospecting.LeadService) []router.Route {
	return router.Protect([]router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: ListLeads(service),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodGet,
			Handler: GetLead(service),
		},
		{
			Path:    "/v1/leads/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateLeadStatus(service),
		},
	}, middleware.AdminOrVendedor())
}

func Pricing(agent pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pricing/proposal",
			Method:      http.MethodPost,
			Handler:     GenerateProposal(agent),
			Middlewares: []router.Middleware{middleware.AdminOrVendedor()},
		},
		{
			Path:    "/v1/segments",
			Method:  http.MethodGet,
			Handler: ListSegments(agent),
		},
		{
			Path:    "/v1/segments/:key/benchmark",
			Method:  http.MethodGet,
			Handler: GetSegmentBenchmark(agent),
		},
	}
}

func FollowUps(service nurturing.FollowUpService) []router.Route {
	return router.Protect([]router.Route{
		{
			Path:    "/v1/leads/:id/followups",
			Method:  http.MethodPost,
			Handler: ScheduleFollowUps(service),
		},
		{
			Path:    "/v1/followups/upcoming",
			Method:  http.MethodGet,
			Handler: ListUpcomingFollowUps(service),
		},
		{
			Path:    "/v1/followups/stats",
			Method:  http.MethodGet,
			Handler: GetFollowUpStats(service),
		},
		{
			Path:    "/v1/followups/:id",
			Method:  http.MethodPatch,
			Handler: UpdateFollowUp(service),
		},
	}, middleware.AdminOrVendedor())
}

// CronJobs são chamadas por um agendador externo e autenticadas pelo X-Cron-Key
func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	return router.Protect([]router.Route{
		{
			Path:    "/v1/cron/followups/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(CronJobTypeFollowUps, services.FollowUps),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}, middleware.CronKeyMiddleware(authenticator))
}
