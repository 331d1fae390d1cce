// Package publichandler provides a shared base for the site's page handlers.
// It centralizes chrome construction, cached page loading, rendering, and
// error handling that would otherwise be duplicated across modules.
package publichandler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bfarth20/malexanderportfolio/internal/content"
	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/pagerender"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/weberror"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Base carries the dependencies shared by page handlers. Embed it in module
// handler structs.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Content returns the content reader.
func (b Base) Content() module.Content {
	return b.deps.Content
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	return b.deps.Log()
}

// Locale returns the configured locale.
func (b Base) Locale() language.Tag {
	return b.deps.Locale
}

// Chrome builds layout chrome for the page at active.
func (b Base) Chrome(settings content.SiteSettings, active, title string) webtemplates.Chrome {
	chrome := webtemplates.NewChrome(settings, active, b.deps.Clock().Year())
	chrome.Title = title
	if b.deps.Locale != language.Und {
		chrome.Lang = b.deps.Locale.String()
	}
	return chrome
}

// WritePage renders a page, falling back to the error page when rendering
// fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, chrome webtemplates.Chrome, body, fragment templ.Component) {
	err := pagerender.WritePage(w, r, pagerender.Page{
		Chrome:   chrome,
		Body:     body,
		Fragment: fragment,
	})
	if err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError logs err and writes the error page with default chrome.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, b.Logger(), b.Chrome(nil, "", ""), err)
}

// WriteNotFound writes the 404 page with default chrome.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteStatus(w, r, b.Chrome(nil, "", ""), http.StatusNotFound)
}

// Load returns page data for key through the refresh cache.
func Load[T any](ctx context.Context, b Base, key string, fetch func(context.Context) (T, error)) (T, error) {
	return revalidate.Load(ctx, b.deps.Pages, key, fetch)
}

// SettingsAndWorks is the data most pages are built from.
type SettingsAndWorks struct {
	Settings content.SiteSettings
	Works    []content.Work
}

// FetchSettingsAndWorks reads settings and works concurrently. The first
// failure cancels the other fetch and is returned.
func FetchSettingsAndWorks(ctx context.Context, reader module.Content, filter content.WorksFilter) (SettingsAndWorks, error) {
	var data SettingsAndWorks
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		settings, err := reader.SiteSettings(gctx)
		data.Settings = settings
		return err
	})
	g.Go(func() error {
		works, err := reader.Works(gctx, filter)
		data.Works = works
		return err
	})
	if err := g.Wait(); err != nil {
		return SettingsAndWorks{}, err
	}
	return data, nil
}
