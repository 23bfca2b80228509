package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/page"
	"github.com/amaumene/gomoviefavs/internal/render"
)

// handleHome renders both lists. Each list is fetched independently; a
// failure leaves that list empty and is reported in the alert slot.
func (h *Handler) handleHome(c *gin.Context) {
	ctx, cancel := pageContext(c)
	defer cancel()

	doc := page.New()
	_, moviesErr := h.frontend.GetMovies(ctx, doc)
	_, favouritesErr := h.frontend.GetFavourites(ctx, doc)

	status := http.StatusOK
	if moviesErr != nil || favouritesErr != nil {
		status = http.StatusBadGateway
		doc.SetAlert(page.AlertDanger, joinMessages(moviesErr, favouritesErr))
	}

	h.renderPage(c, status, doc)
}

// handleAddFavourite is the target of the add-favourite-btn cards.
func (h *Handler) handleAddFavourite(c *gin.Context) {
	ctx, cancel := pageContext(c)
	defer cancel()

	doc := page.New()

	movie, err := render.ParsePayload(c.PostForm(constants.PayloadField))
	if err != nil {
		h.services.Logger.Warnf("[Handler] rejected add request: %v", err)
		h.frontend.GetMovies(ctx, doc)
		h.frontend.GetFavourites(ctx, doc)
		doc.SetAlert(page.AlertWarning, userMessage(err))
		h.renderPage(c, http.StatusBadRequest, doc)
		return
	}

	status := http.StatusOK
	if err := h.frontend.AddFavourite(ctx, doc, movie); err != nil {
		status = http.StatusBadGateway
		kind := page.AlertDanger
		if errors.Is(err, apperrors.ErrDuplicateFavourite) {
			status = http.StatusConflict
			kind = page.AlertWarning
		}
		doc.SetAlert(kind, userMessage(err))
		// the flow did not get as far as the refresh
		h.frontend.GetFavourites(ctx, doc)
	} else {
		doc.SetAlert(page.AlertSuccess, fmt.Sprintf("%s added to favourites", movie.Title))
	}

	if _, err := h.frontend.GetMovies(ctx, doc); err != nil && status == http.StatusOK {
		status = http.StatusBadGateway
		doc.SetAlert(page.AlertDanger, userMessage(err))
	}

	h.renderPage(c, status, doc)
}

// handleRemoveFavourite is the target of the remove-favourite-btn cards.
// Removal failures are only logged, so the response is 200 for any readable
// payload.
func (h *Handler) handleRemoveFavourite(c *gin.Context) {
	ctx, cancel := pageContext(c)
	defer cancel()

	doc := page.New()

	movie, err := render.ParsePayload(c.PostForm(constants.PayloadField))
	if err != nil {
		h.services.Logger.Warnf("[Handler] rejected remove request: %v", err)
		h.frontend.GetMovies(ctx, doc)
		h.frontend.GetFavourites(ctx, doc)
		doc.SetAlert(page.AlertWarning, userMessage(err))
		h.renderPage(c, http.StatusBadRequest, doc)
		return
	}

	h.frontend.RemoveFromFavourite(ctx, doc, movie)
	h.frontend.GetMovies(ctx, doc)

	h.renderPage(c, http.StatusOK, doc)
}
