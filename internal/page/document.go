// Package page holds the HTML document the favourites flows render into. It
// plays the part of the browser DOM: list containers are found by id, cleared
// and refilled wholesale.
package page

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/amaumene/gomoviefavs/internal/constants"
	apperrors "github.com/amaumene/gomoviefavs/internal/errors"
)

// AlertKind selects the styling of the alert slot.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertDanger  AlertKind = "danger"
)

// Document is a parsed HTML page. Methods are safe for concurrent use; each
// list replacement is applied atomically.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// New returns the default page with empty movie and favourite lists.
func New() *Document {
	d, err := Parse(strings.NewReader(layout))
	if err != nil {
		panic(fmt.Sprintf("page: default layout does not parse: %v", err))
	}
	return d
}

// Parse reads an arbitrary HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// HasContainer reports whether an element with the given id exists.
func (d *Document) HasContainer(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.find(id).Length() > 0
}

// ReplaceList empties the container with the given id and appends one <li>
// per fragment, in order. When the container is missing the document is left
// untouched.
func (d *Document) ReplaceList(id string, fragments []string) error {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString("<li>")
		b.WriteString(f)
		b.WriteString("</li>")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.find(id)
	if sel.Length() == 0 {
		return apperrors.NewContainerNotFoundError(id)
	}
	list := sel.First()
	list.Empty()
	list.AppendHtml(b.String())
	return nil
}

// ListItems returns the <li> children of the container with the given id.
func (d *Document) ListItems(id string) (*goquery.Selection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.find(id)
	if sel.Length() == 0 {
		return nil, apperrors.NewContainerNotFoundError(id)
	}
	return sel.First().ChildrenFiltered("li"), nil
}

// SetAlert shows msg in the alert slot. An empty msg hides it. Pages without
// an alert slot ignore the call.
func (d *Document) SetAlert(kind AlertKind, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sel := d.find(constants.AlertID)
	if sel.Length() == 0 {
		return
	}
	sel = sel.First()
	sel.Empty()
	if msg == "" {
		sel.SetAttr("class", "alert d-none")
		return
	}
	sel.SetAttr("class", "alert alert-"+string(kind))
	sel.SetAttr("role", "alert")
	sel.AppendHtml(html.EscapeString(msg))
}

// Alert returns the current alert text.
func (d *Document) Alert() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.TrimSpace(d.find(constants.AlertID).Text())
}

// HTML serialises the whole document.
func (d *Document) HTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Html()
}

// find locates elements by id attribute. Selecting on the attribute keeps
// ids that are not valid CSS identifiers working.
func (d *Document) find(id string) *goquery.Selection {
	return d.doc.Find(fmt.Sprintf("[id=%q]", id))
}
