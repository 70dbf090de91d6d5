package handler

import (
	"net/http"

	"github.com/vfg2006/retention-radar-api/internal/api/handler/router"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/authenticating"
	"github.com/vfg2006/retention-radar-api/internal/usecases/resolving"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
	"github.com/vfg2006/retention-radar-api/pkg/middleware"
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

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     CreateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Metrics retorna as rotas de ingestão de métricas diárias
func Metrics(accountService account.AccountService, scorer scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/metrics",
			Method:      http.MethodPost,
			Handler:     IngestMetrics(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Thresholds retorna as rotas de leitura e override de baseline
func Thresholds(accountService account.AccountService, scorer scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/thresholds",
			Method:      http.MethodGet,
			Handler:     GetThresholds(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/thresholds",
			Method:      http.MethodPut,
			Handler:     UpdateThresholds(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Assessments retorna as rotas de avaliação de risco sob demanda e histórico
func Assessments(accountService account.AccountService, scorer scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/assessments",
			Method:      http.MethodPost,
			Handler:     RunAssessment(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts/:id/assessments",
			Method:      http.MethodGet,
			Handler:     ListAssessments(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/assessments/export",
			Method:      http.MethodGet,
			Handler:     ExportAssessments(accountService, scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// RiskQueries retorna as rotas de consulta com fallback em camadas
func RiskQueries(accountService account.AccountService, resolver resolving.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/risk",
			Method:      http.MethodGet,
			Handler:     GetRisk(accountService, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/retention",
			Method:      http.MethodGet,
			Handler:     GetRetention(accountService, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/trend",
			Method:      http.MethodGet,
			Handler:     GetTrend(accountService, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
			Handler: CreateUser(service),
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

// UserAccounts retorna as rotas para gerenciamento de contas vinculadas a usuários
func UserAccounts(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/accounts",
			Method:      http.MethodGet,
			Handler:     GetUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/accounts",
			Method:      http.MethodPut,
			Handler:     UpdateUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/accounts/link",
			Method:      http.MethodPost,
			Handler:     LinkUserAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/accounts/:account_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
