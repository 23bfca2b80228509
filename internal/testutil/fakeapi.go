// Package testutil provides an in-memory stand-in for the movies API used by
// tests across packages.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/amaumene/gomoviefavs/internal/models"
)

// FakeAPI serves GET /movies, GET/POST /favourites and DELETE
// /favourites/{id} from memory, counting every request.
type FakeAPI struct {
	Server *httptest.Server

	mu         sync.Mutex
	movies     []models.Movie
	favourites []models.Movie
	calls      map[string]int
	statuses   map[string]int
	rawBodies  map[string]string
	posted     []string
}

// NewFakeAPI starts a fake API holding the given catalog and favourites.
func NewFakeAPI(movies, favourites []models.Movie) *FakeAPI {
	f := &FakeAPI{
		movies:     append([]models.Movie(nil), movies...),
		favourites: append([]models.Movie(nil), favourites...),
		calls:      make(map[string]int),
		statuses:   make(map[string]int),
		rawBodies:  make(map[string]string),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

// URL is the API base URL.
func (f *FakeAPI) URL() string { return f.Server.URL }

// Close shuts the server down.
func (f *FakeAPI) Close() { f.Server.Close() }

// Calls returns how many "METHOD /path" requests were received.
func (f *FakeAPI) Calls(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method+" "+path]
}

// Posted returns the raw bodies of POST /favourites requests.
func (f *FakeAPI) Posted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.posted...)
}

// Favourites returns the current favourites.
func (f *FakeAPI) Favourites() []models.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Movie(nil), f.favourites...)
}

// FailWith makes "METHOD /path" answer with status and no side effects.
func (f *FakeAPI) FailWith(method, path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[method+" "+path] = status
}

// RespondRaw makes "METHOD /path" answer 200 with body verbatim.
func (f *FakeAPI) RespondRaw(method, path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rawBodies[method+" "+path] = body
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[key]++

	if status, ok := f.statuses[key]; ok {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if body, ok := f.rawBodies[key]; ok {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
		return
	}

	switch {
	case key == "GET /movies":
		writeJSON(w, http.StatusOK, f.movies)
	case key == "GET /favourites":
		writeJSON(w, http.StatusOK, f.favourites)
	case key == "POST /favourites":
		data, _ := io.ReadAll(r.Body)
		f.posted = append(f.posted, string(data))
		var m models.Movie
		if err := json.Unmarshal(data, &m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.favourites = append(f.favourites, m)
		writeJSON(w, http.StatusCreated, m)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/favourites/"):
		id := strings.TrimPrefix(r.URL.Path, "/favourites/")
		kept := f.favourites[:0]
		found := false
		for _, m := range f.favourites {
			if m.ID.String() == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		f.favourites = kept
		if !found {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// SampleMovies returns two distinct movies for fixtures.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{
			ID:               models.IntID(550),
			Title:            "Fight Club",
			Overview:         "An insomniac office worker and a soap maker form an underground fight club.",
			PosterPath:       "https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
			ReleaseDate:      "1999-10-15",
			VoteCount:        26280,
			VoteAverage:      8.4,
			Popularity:       61.416,
			OriginalLanguage: "en",
			OriginalTitle:    "Fight Club",
			Adult:            false,
		},
		{
			ID:               models.IntID(129),
			Title:            "Spirited Away",
			Overview:         "A young girl wanders into a world ruled by gods, witches and spirits.",
			PosterPath:       "https://image.tmdb.org/t/p/w500/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg",
			ReleaseDate:      "2001-07-20",
			VoteCount:        15000,
			VoteAverage:      8.5,
			Popularity:       90.2,
			OriginalLanguage: "ja",
			OriginalTitle:    "千と千尋の神隠し",
			Adult:            false,
		},
	}
}
