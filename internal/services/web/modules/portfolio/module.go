package portfolio

import (
	"errors"
	"net/http"

	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

// Module serves the filterable catalog of works.
type Module struct{}

// New returns a portfolio module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "portfolio" }

// Mount wires the portfolio route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("portfolio: content reader is required")
	}
	base := publichandler.NewBase(deps)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(base, newService(base)))
	return module.Mount{Prefix: routepath.Portfolio, Handler: mux}, nil
}
