// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/httpx"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
)

// Page describes a module page response for both full-page and partial
// navigation flows.
type Page struct {
	Chrome     webtemplates.Chrome
	StatusCode int
	// Body is rendered inside the site layout.
	Body templ.Component
	// Fragment answers partial navigation requests. Nil means Body.
	Fragment templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it. Nothing is written
// when rendering fails, so callers can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		fragment := page.Fragment
		if fragment == nil {
			fragment = body
		}
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		w.Header().Set("Vary", "HX-Request")
		return httpx.WriteHTML(w, statusCode, buf.Bytes())
	}

	layout := webtemplates.Layout(page.Chrome)
	if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		return err
	}
	w.Header().Set("Vary", "HX-Request")
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
