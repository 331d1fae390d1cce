package public

import (
	"net/http"

	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/httpx"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	// Without this the fallback below would answer other methods on the
	// health path with a 404.
	mux.HandleFunc(routepath.Health, httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
