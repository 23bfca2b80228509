// Package constants defines application-wide constants and default values.
package constants

const (
	AppName    = "GoMovieFavs"
	AppVersion = "1.0.0"

	// Default configuration values
	DefaultAPIURL   = "http://localhost:3000"
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Incoming request rate limiting
	DefaultRateLimit = 20 // requests per second
	DefaultRateBurst = 40 // burst capacity
)

// Movies API paths.
const (
	MoviesPath     = "/movies"
	FavouritesPath = "/favourites"
)

// Page contract: list container ids and card button classes.
const (
	MoviesListID      = "moviesList"
	FavouritesListID  = "favouritesList"
	AlertID           = "alert"
	AddButtonClass    = "add-favourite-btn"
	RemoveButtonClass = "remove-favourite-btn"
	AddButtonLabel    = "Add to Favourite"
	RemoveButtonLabel = "Remove from Favourite"
	AddFormAction     = "/favourites/add"
	RemoveFormAction  = "/favourites/remove"
	// Form field carrying the card's JSON payload.
	PayloadField = "movie"
)
