package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/leadwind/dopebook-backend/internal/adapter/postgres"
	ammorepo "github.com/leadwind/dopebook-backend/internal/adapter/postgres/ammo"
	dopelogrepo "github.com/leadwind/dopebook-backend/internal/adapter/postgres/dopelog"
	envrepo "github.com/leadwind/dopebook-backend/internal/adapter/postgres/environment"
	riflerepo "github.com/leadwind/dopebook-backend/internal/adapter/postgres/rifle"
	userrepo "github.com/leadwind/dopebook-backend/internal/adapter/postgres/user"
	"github.com/leadwind/dopebook-backend/internal/auth"
	"github.com/leadwind/dopebook-backend/internal/config"
	ammosvc "github.com/leadwind/dopebook-backend/internal/service/ammo"
	authsvc "github.com/leadwind/dopebook-backend/internal/service/auth"
	dopelogsvc "github.com/leadwind/dopebook-backend/internal/service/dopelog"
	envsvc "github.com/leadwind/dopebook-backend/internal/service/environment"
	riflesvc "github.com/leadwind/dopebook-backend/internal/service/rifle"
	"github.com/leadwind/dopebook-backend/internal/transport/middleware"
	"github.com/leadwind/dopebook-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, assembles services and handlers, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	rifles := riflerepo.New(pool)
	ammo := ammorepo.New(pool)
	environments := envrepo.New(pool)
	dopeLogs := dopelogrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	rifleService := riflesvc.NewService(logger, rifles)
	ammoService := ammosvc.NewService(logger, ammo, rifles)
	envService := envsvc.NewService(logger, environments, txManager)
	dopeLogService := dopelogsvc.NewService(logger, dopeLogs, rifles, ammo, environments, txManager)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(time.Minute, cfg.RateLimit.ClientTTL)
		defer limiter.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		CORS:    cfg.CORS,
		Limit:   cfg.RateLimit,
		AuthMW:  middleware.Auth(authService),
		Limiter: limiter,

		Auth:         rest.NewAuthHandler(authService, logger),
		Rifles:       rest.NewRifleHandler(rifleService, logger),
		Ammo:         rest.NewAmmoHandler(ammoService, logger),
		Environments: rest.NewEnvironmentHandler(envService, logger),
		DopeLogs:     rest.NewDopeLogHandler(dopeLogService, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
