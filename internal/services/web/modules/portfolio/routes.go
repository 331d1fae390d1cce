package portfolio

import (
	"net/http"

	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Portfolio, h.handleIndex)
}
