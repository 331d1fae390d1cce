package app

import module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	Routes       []module.Mount
}
