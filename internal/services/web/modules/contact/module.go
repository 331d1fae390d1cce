package contact

import (
	"errors"
	"net/http"

	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

// Module serves the contact details.
type Module struct{}

// New returns a contact module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("contact: content reader is required")
	}
	base := publichandler.NewBase(deps)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(base, newService(base)))
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
