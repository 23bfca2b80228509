package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/models"
	"github.com/amaumene/gomoviefavs/internal/testutil"
	"github.com/amaumene/gomoviefavs/pkg/logger"
)

func newTestAPI(t *testing.T, movies, favourites []models.Movie) (*MoviesAPI, *testutil.FakeAPI) {
	t.Helper()
	fake := testutil.NewFakeAPI(movies, favourites)
	t.Cleanup(fake.Close)
	return NewMoviesAPI(fake.URL(), nil, 5*time.Second, logger.Discard()), fake
}

func TestListMovies(t *testing.T) {
	api, fake := newTestAPI(t, testutil.SampleMovies(), nil)

	movies, err := api.ListMovies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutil.SampleMovies(), movies)
	assert.Equal(t, 1, fake.Calls(http.MethodGet, "/movies"))
}

func TestListFavouritesEmpty(t *testing.T) {
	api, _ := newTestAPI(t, nil, nil)

	favourites, err := api.ListFavourites(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, favourites)
	assert.Empty(t, favourites)
}

func TestListNullBodyIsEmptyList(t *testing.T) {
	api, fake := newTestAPI(t, nil, nil)
	fake.RespondRaw(http.MethodGet, "/movies", "null")

	movies, err := api.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Movie{}, movies)
}

func TestListNonSuccessStatus(t *testing.T) {
	api, fake := newTestAPI(t, testutil.SampleMovies(), nil)
	fake.FailWith(http.MethodGet, "/movies", http.StatusInternalServerError)
	fake.FailWith(http.MethodGet, "/favourites", http.StatusNotFound)

	_, err := api.ListMovies(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrHTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "HTTP error! Status: 500")

	_, err = api.ListFavourites(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrHTTPStatus)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
}

func TestListInvalidJSON(t *testing.T) {
	api, fake := newTestAPI(t, nil, nil)
	fake.RespondRaw(http.MethodGet, "/favourites", "<html>oops</html>")

	_, err := api.ListFavourites(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDecodeFailed)
}

func TestTransportFailure(t *testing.T) {
	fake := testutil.NewFakeAPI(nil, nil)
	url := fake.URL()
	fake.Close()

	api := NewMoviesAPI(url, nil, time.Second, logger.Discard())
	_, err := api.ListMovies(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrTransportFailed)
}

func TestCreateFavouritePostsMovieJSON(t *testing.T) {
	api, fake := newTestAPI(t, nil, nil)
	movie := testutil.SampleMovies()[0]

	require.NoError(t, api.CreateFavourite(context.Background(), movie))

	posted := fake.Posted()
	require.Len(t, posted, 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(posted[0]), &got))
	assert.EqualValues(t, 550, got["id"])
	assert.Equal(t, "Fight Club", got["title"])
	assert.Equal(t, "1999-10-15", got["releaseDate"])
	assert.Contains(t, got, "posterPath")
	assert.Contains(t, got, "originalLanguage")
	assert.Equal(t, false, got["adult"])
}

func TestCreateFavouriteDoesNotCheckDuplicates(t *testing.T) {
	movie := testutil.SampleMovies()[0]
	api, fake := newTestAPI(t, nil, []models.Movie{movie})

	require.NoError(t, api.CreateFavourite(context.Background(), movie))
	assert.Equal(t, 0, fake.Calls(http.MethodGet, "/favourites"))
	assert.Len(t, fake.Favourites(), 2)
}

func TestDeleteFavourite(t *testing.T) {
	movie := testutil.SampleMovies()[1]
	api, fake := newTestAPI(t, nil, []models.Movie{movie})

	require.NoError(t, api.DeleteFavourite(context.Background(), movie.ID))
	assert.Equal(t, 1, fake.Calls(http.MethodDelete, "/favourites/129"))
	assert.Empty(t, fake.Favourites())

	err := api.DeleteFavourite(context.Background(), movie.ID)
	assert.ErrorIs(t, err, apperrors.ErrHTTPStatus)
}

func TestStringIDs(t *testing.T) {
	movie := testutil.SampleMovies()[0]
	movie.ID = models.StringID("a1 b/2")
	api, fake := newTestAPI(t, nil, nil)
	fake.RespondRaw(http.MethodGet, "/movies", `[{"id":"a1 b/2","title":"Fight Club"},{"id":7,"title":"Se7en"}]`)

	movies, err := api.ListMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, models.StringID("a1 b/2"), movies[0].ID)
	assert.Equal(t, models.IntID(7), movies[1].ID)

	require.NoError(t, api.CreateFavourite(context.Background(), movie))
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.Posted()[0]), &got))
	assert.Equal(t, "a1 b/2", got["id"])

	require.NoError(t, api.DeleteFavourite(context.Background(), movie.ID))
	assert.Equal(t, 1, fake.Calls(http.MethodDelete, "/favourites/a1 b/2"))
	assert.Empty(t, fake.Favourites())
}

func TestRequestsHonourContext(t *testing.T) {
	api, fake := newTestAPI(t, testutil.SampleMovies(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.ListMovies(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, fake.Calls(http.MethodGet, "/movies"))
}
