// Package models holds the movie records exchanged with the movies API and
// the card view-model rendered from them.
package models

// Movie is a catalog entry as served by the movies API. Field names follow
// the API's camelCase JSON keys.
type Movie struct {
	ID               MovieID `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"posterPath"`
	ReleaseDate      string  `json:"releaseDate"`
	VoteCount        int64   `json:"voteCount"`
	VoteAverage      float64 `json:"voteAverage"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"originalLanguage"`
	OriginalTitle    string  `json:"originalTitle"`
	Adult            bool    `json:"adult"`
}

// ContainsID reports whether any movie in list has the given id.
func ContainsID(list []Movie, id MovieID) bool {
	for _, m := range list {
		if m.ID == id {
			return true
		}
	}
	return false
}

// CardAction selects which button a card carries.
type CardAction int

const (
	ActionAdd CardAction = iota
	ActionRemove
)

// CardDetail is one labelled line under a card's overview.
type CardDetail struct {
	Label string
	Value string
}

// Card is the view-model of one rendered movie.
type Card struct {
	MovieID     MovieID
	Title       string
	Overview    string
	PosterURL   string
	Details     []CardDetail
	ButtonClass string
	ButtonLabel string
	FormAction  string
	// Payload is the movie's JSON encoding, carried by the button.
	Payload string
}
