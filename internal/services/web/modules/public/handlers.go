package public

import (
	"net/http"

	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/httpx"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	"go.uber.org/zap"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"}); err != nil {
		h.Logger().Warn("write health response", zap.Error(err))
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
