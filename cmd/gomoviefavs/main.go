package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/config"
	"github.com/amaumene/gomoviefavs/internal/constants"
	"github.com/amaumene/gomoviefavs/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().Fatalf("[App] failed to load configuration: %v", err)
	}

	log := InitializeLogger(cfg)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	container := InitializeServices(cfg, log)
	router := NewRouter(cfg, container)

	if err := serve(router, cfg, log); err != nil {
		log.Fatalf("[App] server error: %v", err)
	}
}

func serve(handler http.Handler, cfg *config.Config, log logger.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  constants.ReadTimeout,
		WriteTimeout: constants.WriteTimeout,
		IdleTimeout:  constants.IdleTimeout,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		log.Infof("[App] received %s, shutting down", s)

		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	log.Infof("[App] %s %s listening on %s", constants.AppName, constants.AppVersion, srv.Addr)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	log.Infof("[App] stopped server on %s", srv.Addr)
	return nil
}
