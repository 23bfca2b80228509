// Package render turns movies into card view-models and HTML fragments.
// Everything here is pure: no I/O and no shared state beyond the parsed
// template.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/models"
)

var cardTemplate = template.Must(template.New("card").Parse(`<div class="card mb-3" style="width: 18rem;">
  <img class="card-img-top" src="{{.PosterURL}}" alt="{{.Title}}">
  <div class="card-body">
    <h5 class="card-title">{{.Title}}</h5>
    <p class="card-text">{{.Overview}}</p>
{{- range .Details}}
    <p class="card-text"><small class="text-muted">{{.Label}}: {{.Value}}</small></p>
{{- end}}
    <form method="post" action="{{.FormAction}}">
      <button type="submit" name="` + constants.PayloadField + `" value="{{.Payload}}" data-movie='{{.Payload}}' class='{{.ButtonClass}}'>{{.ButtonLabel}}</button>
    </form>
  </div>
</div>`))

// CardOption customises the button of a card.
type CardOption func(*models.Card)

// ForRemoval gives the card the remove-from-favourites button.
func ForRemoval() CardOption {
	return WithButton(constants.RemoveButtonClass, constants.RemoveButtonLabel, constants.RemoveFormAction)
}

// WithButton sets the button class, label and the form action it submits to.
func WithButton(class, label, action string) CardOption {
	return func(c *models.Card) {
		c.ButtonClass = class
		c.ButtonLabel = label
		c.FormAction = action
	}
}

// OptionsFor maps a card action to its options.
func OptionsFor(action models.CardAction) []CardOption {
	if action == models.ActionRemove {
		return []CardOption{ForRemoval()}
	}
	return nil
}

// NewCard builds the view-model for movie. Without options the card carries
// the add-to-favourites button. The only failure is a movie that cannot be
// JSON encoded (NaN or infinite scores).
func NewCard(movie models.Movie, opts ...CardOption) (models.Card, error) {
	payload, err := json.Marshal(movie)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to encode movie %s: %w", movie.ID, err)
	}

	card := models.Card{
		MovieID:     movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterURL:   movie.PosterPath,
		ButtonClass: constants.AddButtonClass,
		ButtonLabel: constants.AddButtonLabel,
		FormAction:  constants.AddFormAction,
		Payload:     string(payload),
		Details: []models.CardDetail{
			{Label: "Release Date", Value: movie.ReleaseDate},
			{Label: "Vote Count", Value: strconv.FormatInt(movie.VoteCount, 10)},
			{Label: "Vote Average", Value: formatNumber(movie.VoteAverage)},
			{Label: "Popularity", Value: formatNumber(movie.Popularity)},
			{Label: "Original Language", Value: movie.OriginalLanguage},
			{Label: "Original Title", Value: movie.OriginalTitle},
			{Label: "Adult", Value: strconv.FormatBool(movie.Adult)},
		},
	}
	for _, opt := range opts {
		opt(&card)
	}
	return card, nil
}

// NewCards builds one card per movie, in order.
func NewCards(movies []models.Movie, opts ...CardOption) ([]models.Card, error) {
	cards := make([]models.Card, 0, len(movies))
	for _, m := range movies {
		card, err := NewCard(m, opts...)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// RenderCard produces the HTML fragment for card.
func RenderCard(card models.Card) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, card); err != nil {
		return "", fmt.Errorf("failed to render card for movie %s: %w", card.MovieID, err)
	}
	return buf.String(), nil
}

// RenderCards renders each card to a fragment.
func RenderCards(cards []models.Card) ([]string, error) {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		html, err := RenderCard(c)
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}

// ParsePayload decodes the movie JSON carried by a card button.
func ParsePayload(payload string) (models.Movie, error) {
	var movie models.Movie
	if strings.TrimSpace(payload) == "" {
		return movie, apperrors.NewInvalidPayloadError(fmt.Errorf("empty payload"))
	}
	if err := json.Unmarshal([]byte(payload), &movie); err != nil {
		return models.Movie{}, apperrors.NewInvalidPayloadError(err)
	}
	return movie, nil
}

// formatNumber prints a float the way Number#toString does: shortest
// round-trip digits, plain notation in [1e-6, 1e21) and exponent form outside,
// with the exponent unpadded ("1e-7", "1e+21").
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
