package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/deppfellow/student-records/internal/database"
	"github.com/deppfellow/student-records/internal/handler"
	"github.com/deppfellow/student-records/internal/logger"
	"github.com/deppfellow/student-records/internal/repository"
	"github.com/deppfellow/student-records/internal/router"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	if err := database.Migrate(startupCtx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	if err := services.Auth.SeedAdmin(startupCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
