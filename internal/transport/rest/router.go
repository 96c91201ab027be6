package rest

import (
	"log/slog"
	"net/http"

	"github.com/leadwind/dopebook-backend/internal/config"
	"github.com/leadwind/dopebook-backend/internal/transport/middleware"
)

// RouterDeps carries everything NewRouter needs. Auth endpoints and health
// probes stay public; every logbook route sits behind the auth middleware.
type RouterDeps struct {
	Log    *slog.Logger
	CORS   config.CORSConfig
	Limit  config.RateLimitConfig
	AuthMW middleware.Middleware

	Limiter *middleware.RateLimiter

	Auth         *AuthHandler
	Rifles       *RifleHandler
	Ammo         *AmmoHandler
	Environments *EnvironmentHandler
	DopeLogs     *DopeLogHandler
	Health       *HealthHandler
}

// NewRouter assembles the HTTP routing table. The rate limiter runs inside
// the auth wrap on protected routes so it keys on the authenticated user;
// on the public auth endpoints it keys on the remote address.
func NewRouter(deps RouterDeps) http.Handler {
	limit := middleware.Middleware(func(next http.Handler) http.Handler { return next })
	if deps.Limit.Enabled && deps.Limiter != nil {
		limit = deps.Limiter.Limit(deps.Limit.RequestsPerMinute, deps.Limit.Burst)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.Handle("POST /api/v1/auth/register", limit(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/v1/auth/login", limit(http.HandlerFunc(deps.Auth.Login)))

	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/rifles", deps.Rifles.Create)
	api.HandleFunc("GET /api/v1/rifles", deps.Rifles.List)
	api.HandleFunc("GET /api/v1/rifles/{id}", deps.Rifles.Get)
	api.HandleFunc("PATCH /api/v1/rifles/{id}", deps.Rifles.Update)
	api.HandleFunc("DELETE /api/v1/rifles/{id}", deps.Rifles.Delete)
	api.HandleFunc("GET /api/v1/rifles/{id}/stats", deps.Rifles.Stats)

	api.HandleFunc("POST /api/v1/ammo", deps.Ammo.Create)
	api.HandleFunc("GET /api/v1/ammo", deps.Ammo.List)
	api.HandleFunc("GET /api/v1/ammo/{id}", deps.Ammo.Get)
	api.HandleFunc("PATCH /api/v1/ammo/{id}", deps.Ammo.Update)
	api.HandleFunc("DELETE /api/v1/ammo/{id}", deps.Ammo.Delete)
	api.HandleFunc("GET /api/v1/ammo/{id}/stats", deps.Ammo.Stats)

	api.HandleFunc("POST /api/v1/environments", deps.Environments.Create)
	api.HandleFunc("GET /api/v1/environments", deps.Environments.List)
	// Literal segments take precedence over {id}, so current and averages
	// never collide with the wildcard routes.
	api.HandleFunc("GET /api/v1/environments/current", deps.Environments.Current)
	api.HandleFunc("GET /api/v1/environments/averages", deps.Environments.Averages)
	api.HandleFunc("GET /api/v1/environments/{id}", deps.Environments.Get)
	api.HandleFunc("PATCH /api/v1/environments/{id}", deps.Environments.Update)
	api.HandleFunc("DELETE /api/v1/environments/{id}", deps.Environments.Delete)

	api.HandleFunc("POST /api/v1/dope-logs", deps.DopeLogs.Create)
	api.HandleFunc("GET /api/v1/dope-logs", deps.DopeLogs.List)
	api.HandleFunc("GET /api/v1/dope-logs/{id}", deps.DopeLogs.Get)
	api.HandleFunc("PATCH /api/v1/dope-logs/{id}", deps.DopeLogs.Update)
	api.HandleFunc("DELETE /api/v1/dope-logs/{id}", deps.DopeLogs.Delete)

	api.HandleFunc("GET /api/v1/dope-card", deps.DopeLogs.Card)

	mux.Handle("/api/v1/", middleware.Chain(deps.AuthMW, limit)(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	)(mux)
}
