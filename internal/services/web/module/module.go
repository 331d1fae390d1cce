// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Content reads site content for page modules.
type Content interface {
	SiteSettings(ctx context.Context) (content.SiteSettings, error)
	Works(ctx context.Context, filter content.WorksFilter) ([]content.Work, error)
	ResolveAsset(ctx context.Context, candidates ...string) (string, bool, error)
}

// Dependencies carries the shared collaborators handed to every module at
// mount time.
type Dependencies struct {
	Content Content
	// Pages caches page data between refreshes. Nil disables caching.
	Pages  *revalidate.Cache
	Logger *zap.Logger
	// Locale orders titles and sets the document language.
	Locale language.Tag
	// Now is the clock used for footer dates. Nil means time.Now.
	Now func() time.Time
}

// Clock returns the configured clock.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Log returns the configured logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
