package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
	"github.com/amaumene/gomoviefavs/internal/page"
)

// pageContext bounds every API call made while building one page.
func pageContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), constants.PageTimeout)
}

// userMessage strips the error classification for display. Context added by
// wrapping the ClientError is kept.
func userMessage(err error) string {
	var ce *apperrors.ClientError
	if !errors.As(err, &ce) {
		return err.Error()
	}
	full := err.Error()
	if inner := ce.Error(); strings.HasSuffix(full, inner) {
		return strings.TrimSuffix(full, inner) + ce.Message
	}
	return ce.Message
}

// joinMessages renders several failures as one alert line.
func joinMessages(errs ...error) string {
	var msgs []string
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, userMessage(err))
		}
	}
	return strings.Join(msgs, "; ")
}

// renderPage writes doc as the response body.
func (h *Handler) renderPage(c *gin.Context, status int, doc *page.Document) {
	html, err := doc.HTML()
	if err != nil {
		h.services.Logger.Errorf("[Handler] failed to serialise page: %v", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}
