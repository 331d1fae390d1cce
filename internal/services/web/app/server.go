package app

import (
	"net/http"

	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/httpx"
)

// BuildRootHandler composes the root mux and wraps it with the request
// middleware chain: panic recovery, request ids, access logging.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{
		Dependencies: cfg.Dependencies,
		Modules:      cfg.Modules,
		Routes:       cfg.Routes,
	})
	if err != nil {
		return nil, err
	}
	logger := cfg.Dependencies.Log()
	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.RequestLogger(logger),
	), nil
}
