package modules

import (
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules/about"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules/contact"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules/home"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules/portfolio"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules/public"
)

// Default returns the site's page modules in mount order. The public module
// owns the root fallback and is mounted last.
func Default() []Module {
	return []Module{
		home.New(),
		portfolio.New(),
		about.New(),
		contact.New(),
		public.New(),
	}
}
