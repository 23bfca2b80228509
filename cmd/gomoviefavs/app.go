package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/config"
	"github.com/amaumene/gomoviefavs/internal/handlers"
	"github.com/amaumene/gomoviefavs/internal/middleware"
	"github.com/amaumene/gomoviefavs/internal/services"
	"github.com/amaumene/gomoviefavs/pkg/logger"
	"github.com/amaumene/gomoviefavs/pkg/ratelimiter"
)

// InitializeLogger builds the process logger at the configured level.
func InitializeLogger(cfg *config.Config) logger.Logger {
	log := logger.NewWithOutput(logger.ParseLevel(cfg.LogLevel), os.Stdout, os.Stderr)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		log.Warnf("[App] unknown log level '%s', defaulting to info", cfg.LogLevel)
	}
	return log
}

// InitializeServices wires the movies API client into a service container.
func InitializeServices(cfg *config.Config, log logger.Logger) *services.Container {
	container := &services.Container{
		Movies: services.NewMoviesAPI(cfg.APIURL, nil, cfg.RequestTimeout, log),
		Logger: log,
	}

	log.Infof("[App] services initialized, movies API at %s", cfg.APIURL)
	return container
}

// NewRouter assembles the middleware stack and the page routes.
func NewRouter(cfg *config.Config, container *services.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(container.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(ratelimiter.NewTokenBucket(cfg.RateBurst, cfg.RateLimit)))
	r.Use(middleware.Gzip(container.Logger))

	handlers.New(container, cfg).RegisterRoutes(r)
	return r
}
