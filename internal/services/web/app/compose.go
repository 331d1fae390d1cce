package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
)

// ComposeInput carries the modules and infrastructure routes mounted on the
// root mux.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Routes are mounted as-is, ahead of modules. Static assets and the
	// metrics endpoint live here.
	Routes []module.Mount
}

// Compose builds a root HTTP handler. Every prefix may be claimed once.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, route := range input.Routes {
		prefix := strings.TrimSpace(route.Prefix)
		if err := validatePrefix(route.Prefix); err != nil {
			return nil, fmt.Errorf("route has invalid prefix %q: %w", route.Prefix, err)
		}
		if route.Handler == nil {
			return nil, fmt.Errorf("route %q: handler is required", prefix)
		}
		if err := mount(root, "route "+prefix, prefix, route.Handler, seen); err != nil {
			return nil, err
		}
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		m, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if err := mount(root, feature.ID(), prefix, m.Handler, seen); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mount(root *http.ServeMux, owner, prefix string, handler http.Handler, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("%q duplicates prefix %q owned by %q", owner, prefix, previous)
	}
	seen[prefix] = owner
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	m, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(m.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), m.Prefix, err)
	}
	if m.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return m, m.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	return nil
}
