package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/models"
	"github.com/amaumene/gomoviefavs/pkg/httputil"
	"github.com/amaumene/gomoviefavs/pkg/logger"
)

// MoviesAPI talks to the movies/favourites REST API rooted at baseURL.
type MoviesAPI struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewMoviesAPI creates a client for the API at baseURL (no trailing slash).
// A nil httpClient gets a pooled client with the given timeout.
func NewMoviesAPI(baseURL string, httpClient *http.Client, timeout time.Duration, log logger.Logger) *MoviesAPI {
	if httpClient == nil {
		httpClient = httputil.NewHTTPClient(timeout)
	}
	if log == nil {
		log = logger.New()
	}
	return &MoviesAPI{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

// ListMovies fetches the whole movie catalog.
func (a *MoviesAPI) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := a.list(ctx, constants.MoviesPath, "movies")
	if err != nil {
		a.logger.Errorf("[MoviesAPI] error occurred while fetching movies: %v", err)
		return nil, err
	}
	a.logger.Debugf("[MoviesAPI] fetched %d movies", len(movies))
	return movies, nil
}

// ListFavourites fetches the current favourites.
func (a *MoviesAPI) ListFavourites(ctx context.Context) ([]models.Movie, error) {
	favourites, err := a.list(ctx, constants.FavouritesPath, "favourites")
	if err != nil {
		a.logger.Errorf("[MoviesAPI] error occurred while fetching favourites: %v", err)
		return nil, err
	}
	a.logger.Debugf("[MoviesAPI] fetched %d favourites", len(favourites))
	return favourites, nil
}

// CreateFavourite posts movie to the favourites collection. It does not check
// for duplicates.
func (a *MoviesAPI) CreateFavourite(ctx context.Context, movie models.Movie) error {
	body, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("failed to encode movie %s: %w", movie.ID, err)
	}

	resp, err := a.do(ctx, http.MethodPost, constants.FavouritesPath, bytes.NewReader(body))
	if err != nil {
		a.logger.Errorf("[MoviesAPI] error occurred while adding to favourites: %v", err)
		return err
	}
	httputil.Drain(resp.Body)

	a.logger.Infof("[MoviesAPI] added movie %s to favourites", movie.ID)
	return nil
}

// DeleteFavourite removes the favourite with the given id.
func (a *MoviesAPI) DeleteFavourite(ctx context.Context, id models.MovieID) error {
	path := constants.FavouritesPath + "/" + url.PathEscape(id.String())

	resp, err := a.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		a.logger.Errorf("[MoviesAPI] error occurred while removing from favourites: %v", err)
		return err
	}
	httputil.Drain(resp.Body)

	a.logger.Infof("[MoviesAPI] removed movie %s from favourites", id)
	return nil
}

func (a *MoviesAPI) list(ctx context.Context, path, what string) ([]models.Movie, error) {
	resp, err := a.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var movies []models.Movie
	if err := httputil.DecodeJSON(resp.Body, &movies); err != nil {
		return nil, apperrors.NewDecodeError(what, err)
	}
	if movies == nil {
		// "null" decodes to a nil slice; callers always get a list.
		movies = []models.Movie{}
	}
	return movies, nil
}

// do sends the request and returns the response only on a 2xx status.
func (a *MoviesAPI) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	target := a.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(method, target, err)
	}

	if !httputil.IsSuccess(resp.StatusCode) {
		httputil.Drain(resp.Body)
		return nil, apperrors.NewHTTPStatusError(resp.StatusCode)
	}

	return resp, nil
}
