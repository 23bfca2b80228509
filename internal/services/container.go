// Package services provides the movies API client and the dependency
// container handed to the web layer.
package services

import (
	"context"

	"github.com/amaumene/gomoviefavs/internal/models"
	"github.com/amaumene/gomoviefavs/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Movies MoviesService
	Logger logger.Logger
}

// MoviesService defines the interface for movies API operations.
type MoviesService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	ListFavourites(ctx context.Context) ([]models.Movie, error)
	CreateFavourite(ctx context.Context, movie models.Movie) error
	DeleteFavourite(ctx context.Context, id models.MovieID) error
}

var _ MoviesService = (*MoviesAPI)(nil)
