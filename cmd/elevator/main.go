package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevator_dispatch/internal/handlers"
	"elevator_dispatch/internal/logger"
	"elevator_dispatch/internal/repository"
	"elevator_dispatch/internal/repository/db"
	"elevator_dispatch/internal/server"
	"elevator_dispatch/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Elevator Dispatch API
// @version                     1.0
// @description                 Single-car elevator dispatcher: car requests, landing calls, live state and event history.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	boot := logger.New(logger.InfoLevel)

	if err := loadDotEnv(".env"); err != nil {
		boot.Fatalw("error reading .env", "err", err)
	}
	cfg, err := loadConfig("configs")
	if err != nil {
		boot.Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	rt, err := service.NewRuntime(cfg.Dispatch, log)
	if err != nil {
		log.Fatalw("invalid elevator config", "err", err)
	}

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(service.Deps{Repos: repos, Runtime: rt, Auth: cfg.Auth})
	apiHandler := handlers.NewHandler(services, log.Named("http"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Simulator.Run(ctx, cfg.Tick)
	log.Infow("dispatcher started",
		"floors", []int{cfg.Dispatch.MinFloor, cfg.Dispatch.MaxFloor},
		"initial_floor", cfg.Dispatch.InitialFloor,
		"tick", cfg.Tick)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops the simulator and
// drains the HTTP server.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
