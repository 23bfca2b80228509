// Package frontend implements the favourites flows: fetch a list from the
// movies API, render it as cards and swap it into a page. Calls are not
// serialised against each other; two concurrent adds for the same movie can
// both pass the duplicate check.
package frontend

import (
	"context"
	"fmt"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/models"
	"github.com/amaumene/gomoviefavs/internal/page"
	"github.com/amaumene/gomoviefavs/internal/render"
	"github.com/amaumene/gomoviefavs/internal/services"
	"github.com/amaumene/gomoviefavs/pkg/logger"
)

// Frontend runs the flows against a MoviesService.
type Frontend struct {
	movies services.MoviesService
	logger logger.Logger
}

// New creates a Frontend.
func New(movies services.MoviesService, log logger.Logger) *Frontend {
	if log == nil {
		log = logger.New()
	}
	return &Frontend{movies: movies, logger: log}
}

// GetMovies fetches the catalog and replaces the movies list of doc with one
// add card per movie. On failure the list keeps its previous contents.
func (f *Frontend) GetMovies(ctx context.Context, doc *page.Document) ([]models.Movie, error) {
	movies, err := f.movies.ListMovies(ctx)
	if err != nil {
		f.logger.Errorf("[Frontend] error occurred while fetching movies: %v", err)
		return nil, err
	}

	if err := f.renderList(doc, constants.MoviesListID, movies, models.ActionAdd); err != nil {
		f.logger.Errorf("[Frontend] error occurred while fetching movies: %v", err)
		return nil, err
	}
	return movies, nil
}

// GetFavourites fetches the favourites and replaces the favourites list of
// doc with one remove card per movie. It also fails when doc has no
// favourites list.
func (f *Frontend) GetFavourites(ctx context.Context, doc *page.Document) ([]models.Movie, error) {
	favourites, err := f.movies.ListFavourites(ctx)
	if err != nil {
		f.logger.Errorf("[Frontend] error occurred while fetching favourites: %v", err)
		return nil, err
	}
	f.logger.Debugf("[Frontend] favourites: %d", len(favourites))

	if err := f.renderList(doc, constants.FavouritesListID, favourites, models.ActionRemove); err != nil {
		f.logger.Errorf("[Frontend] error occurred while fetching favourites: %v", err)
		return nil, err
	}
	return favourites, nil
}

// AddFavourite adds movie to the favourites unless a favourite with the same
// id already exists, then refreshes the favourites list. The existence check
// and the insert are separate requests.
func (f *Frontend) AddFavourite(ctx context.Context, doc *page.Document, movie models.Movie) error {
	if err := f.addFavourite(ctx, doc, movie); err != nil {
		f.logger.Errorf("[Frontend] error occurred while adding to favourites: %v", err)
		return err
	}
	return nil
}

func (f *Frontend) addFavourite(ctx context.Context, doc *page.Document, movie models.Movie) error {
	favourites, err := f.movies.ListFavourites(ctx)
	if err != nil {
		return err
	}

	if models.ContainsID(favourites, movie.ID) {
		return apperrors.NewDuplicateFavouriteError(movie.ID)
	}

	if err := f.movies.CreateFavourite(ctx, movie); err != nil {
		return err
	}

	if _, err := f.GetFavourites(ctx, doc); err != nil {
		return fmt.Errorf("favourite %s added but refresh failed: %w", movie.ID, err)
	}
	return nil
}

// RemoveFromFavourite deletes movie from the favourites and refreshes the
// favourites list whether or not the delete succeeded. Failures are logged
// only.
func (f *Frontend) RemoveFromFavourite(ctx context.Context, doc *page.Document, movie models.Movie) {
	if err := f.movies.DeleteFavourite(ctx, movie.ID); err != nil {
		f.logger.Errorf("[Frontend] error occurred while removing from favourites: %v", err)
	}

	if _, err := f.GetFavourites(ctx, doc); err != nil {
		f.logger.Errorf("[Frontend] error occurred while removing from favourites: %v", err)
	}
}

// renderList builds every fragment before touching doc so a render error
// leaves the list as it was.
func (f *Frontend) renderList(doc *page.Document, listID string, movies []models.Movie, action models.CardAction) error {
	cards, err := render.NewCards(movies, render.OptionsFor(action)...)
	if err != nil {
		return err
	}
	fragments, err := render.RenderCards(cards)
	if err != nil {
		return err
	}
	return doc.ReplaceList(listID, fragments)
}
