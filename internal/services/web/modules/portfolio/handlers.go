package portfolio

import (
	"net/http"

	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(base publichandler.Base, s service) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.load(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := portfolioView(data, r.URL.Query().Get(routepath.RoleQueryName))
	chrome := h.Chrome(data.Settings, routepath.Portfolio, "Portfolio")
	h.WritePage(w, r, chrome, webtemplates.PortfolioPage(view), webtemplates.PortfolioResults(view))
}
