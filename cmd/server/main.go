package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/gitlancederecho/sona-app/config"
	"github.com/gitlancederecho/sona-app/internal/identity"
	profileHTTP "github.com/gitlancederecho/sona-app/internal/profile/delivery/http"
	profileRepository "github.com/gitlancederecho/sona-app/internal/profile/repository"
	profileUsecase "github.com/gitlancederecho/sona-app/internal/profile/usecase"
	setlistHTTP "github.com/gitlancederecho/sona-app/internal/setlist/delivery/http"
	setlistRepository "github.com/gitlancederecho/sona-app/internal/setlist/repository"
	setlistUsecase "github.com/gitlancederecho/sona-app/internal/setlist/usecase"
	signupHTTP "github.com/gitlancederecho/sona-app/internal/signup/delivery/http"
	signupUsecase "github.com/gitlancederecho/sona-app/internal/signup/usecase"
	streamHTTP "github.com/gitlancederecho/sona-app/internal/stream/delivery/http"
	streamRepository "github.com/gitlancederecho/sona-app/internal/stream/repository"
	streamUsecase "github.com/gitlancederecho/sona-app/internal/stream/usecase"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		// fail fast; a half-configured instance must never serve signups
		log.Fatalf("config: %v", errors.Configuration(err))
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *appLogger); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger logger.Logger) error {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	identityStore := identity.NewClient(cfg.Identity, nil, appLogger)

	profileRepo := profileRepository.NewProfileRepository(db, appLogger)
	setlistRepo := setlistRepository.NewSetlistRepository(db, appLogger)
	streamRepo := streamRepository.NewStreamRepository(db, appLogger)

	signupUC := signupUsecase.NewSignupUsecase(profileRepo, identityStore, appLogger, *cfg)
	profileUC := profileUsecase.NewProfileUsecase(profileRepo, appLogger)
	setlistUC := setlistUsecase.NewSetlistUsecase(setlistRepo, appLogger)
	streamUC := streamUsecase.NewStreamUsecase(streamRepo, appLogger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	signupHTTP.NewSignupHandlers(signupUC, appLogger).MapRoutes(r)
	profileHTTP.NewProfileHandlers(profileUC, appLogger).MapRoutes(r)
	setlistHTTP.NewSetlistHandlers(setlistUC, appLogger).MapRoutes(r)
	streamHTTP.NewStreamHandlers(streamUC, appLogger).MapRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	appLogger.Info("server started", "port", cfg.Server.Port, "env", cfg.Server.Environment)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
