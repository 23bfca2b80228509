package render

import (
	"math"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/models"
	"github.com/amaumene/gomoviefavs/internal/testutil"
)

func renderDoc(t *testing.T, card models.Card) *goquery.Document {
	t.Helper()
	html, err := RenderCard(card)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestNewCardDefaultsToAdd(t *testing.T) {
	movie := testutil.SampleMovies()[0]

	card, err := NewCard(movie)
	require.NoError(t, err)

	assert.Equal(t, models.IntID(550), card.MovieID)
	assert.Equal(t, "add-favourite-btn", card.ButtonClass)
	assert.Equal(t, "Add to Favourite", card.ButtonLabel)
	assert.Equal(t, "/favourites/add", card.FormAction)

	want := []models.CardDetail{
		{Label: "Release Date", Value: "1999-10-15"},
		{Label: "Vote Count", Value: "26280"},
		{Label: "Vote Average", Value: "8.4"},
		{Label: "Popularity", Value: "61.416"},
		{Label: "Original Language", Value: "en"},
		{Label: "Original Title", Value: "Fight Club"},
		{Label: "Adult", Value: "false"},
	}
	assert.Equal(t, want, card.Details)
}

func TestNewCardForRemoval(t *testing.T) {
	card, err := NewCard(testutil.SampleMovies()[1], ForRemoval())
	require.NoError(t, err)

	assert.Equal(t, "remove-favourite-btn", card.ButtonClass)
	assert.Equal(t, "Remove from Favourite", card.ButtonLabel)
	assert.Equal(t, "/favourites/remove", card.FormAction)
}

func TestNewCardCustomButton(t *testing.T) {
	card, err := NewCard(testutil.SampleMovies()[1], WithButton("watch-btn", "Watch", "/watch"))
	require.NoError(t, err)
	assert.Equal(t, "watch-btn", card.ButtonClass)
	assert.Equal(t, "Watch", card.ButtonLabel)
	assert.Equal(t, "/watch", card.FormAction)
}

func TestNewCardRejectsUnencodableMovie(t *testing.T) {
	movie := testutil.SampleMovies()[0]
	movie.Popularity = math.NaN()

	_, err := NewCard(movie)
	assert.Error(t, err)

	_, err = NewCards([]models.Movie{testutil.SampleMovies()[1], movie})
	assert.Error(t, err)
}

func TestRenderCardContents(t *testing.T) {
	movie := testutil.SampleMovies()[0]
	card, err := NewCard(movie)
	require.NoError(t, err)

	doc := renderDoc(t, card)

	assert.Equal(t, "Fight Club", doc.Find("h5.card-title").Text())
	assert.Equal(t, movie.Overview, doc.Find("p.card-text").First().Text())

	img := doc.Find("img.card-img-top")
	src, _ := img.Attr("src")
	alt, _ := img.Attr("alt")
	assert.Equal(t, movie.PosterPath, src)
	assert.Equal(t, "Fight Club", alt)

	assert.Equal(t, 7, doc.Find("small.text-muted").Length())
	assert.Equal(t, "Vote Average: 8.4", doc.Find("small.text-muted").Eq(2).Text())

	form := doc.Find("form")
	action, _ := form.Attr("action")
	method, _ := form.Attr("method")
	assert.Equal(t, "/favourites/add", action)
	assert.Equal(t, "post", method)

	btn := doc.Find("button.add-favourite-btn")
	require.Equal(t, 1, btn.Length())
	assert.Equal(t, "Add to Favourite", btn.Text())
	name, _ := btn.Attr("name")
	assert.Equal(t, "movie", name)
}

func TestRenderCardPayloadRoundTrip(t *testing.T) {
	movie := testutil.SampleMovies()[1]
	card, err := NewCard(movie, ForRemoval())
	require.NoError(t, err)

	doc := renderDoc(t, card)
	btn := doc.Find("button.remove-favourite-btn")

	data, ok := btn.Attr("data-movie")
	require.True(t, ok)
	got, err := ParsePayload(data)
	require.NoError(t, err)
	assert.Equal(t, movie, got)

	value, _ := btn.Attr("value")
	assert.Equal(t, data, value)
}

func TestRenderCardEscapesMarkup(t *testing.T) {
	movie := testutil.SampleMovies()[0]
	movie.Title = `<script>alert("x")</script>`
	movie.Overview = `It's "quoted" & <b>bold</b>`

	card, err := NewCard(movie)
	require.NoError(t, err)
	html, err := RenderCard(card)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>bold</b>")

	doc := renderDoc(t, card)
	assert.Equal(t, movie.Title, doc.Find("h5.card-title").Text())

	data, _ := doc.Find("button").Attr("data-movie")
	got, err := ParsePayload(data)
	require.NoError(t, err)
	assert.Equal(t, movie, got)
}

func TestRenderCards(t *testing.T) {
	cards, err := NewCards(testutil.SampleMovies())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	fragments, err := RenderCards(cards)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Contains(t, fragments[1], "Spirited Away")
}

func TestParsePayloadErrors(t *testing.T) {
	_, err := ParsePayload("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPayload)

	_, err = ParsePayload("{not json")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPayload)

	_, err = ParsePayload(`{"id":true}`)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPayload)
}

func TestParsePayloadKeepsIDKind(t *testing.T) {
	movie, err := ParsePayload(`{"id":"550","title":"Fight Club"}`)
	require.NoError(t, err)
	assert.Equal(t, models.StringID("550"), movie.ID)

	card, err := NewCard(movie)
	require.NoError(t, err)
	assert.Contains(t, card.Payload, `"id":"550"`)

	movie, err = ParsePayload(`{"id":550,"title":"Fight Club"}`)
	require.NoError(t, err)
	assert.Equal(t, models.IntID(550), movie.ID)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "7", formatNumber(7))
	assert.Equal(t, "7.25", formatNumber(7.25))
	assert.Equal(t, "0.1", formatNumber(0.1))
	assert.Equal(t, "-3.5", formatNumber(-3.5))
	assert.Equal(t, "123456789012345680000", formatNumber(123456789012345678901))
	assert.Equal(t, "1e+21", formatNumber(1e21))
	assert.Equal(t, "1.5e+22", formatNumber(1.5e22))
	assert.Equal(t, "0.000001", formatNumber(0.000001))
	assert.Equal(t, "1e-7", formatNumber(1e-7))
	assert.Equal(t, "2.5e-8", formatNumber(2.5e-8))
	assert.Equal(t, "0", formatNumber(0))
}
