package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// Empty-state copy.
const (
	EmptyFeatured      = "No featured items yet. In Notion, check the Featured box on a work."
	EmptyPortfolio     = "No works yet. Add items in Notion."
	EmptyRoleSelection = "No works match this role yet."
)

// PortfolioResultsID is the element swapped by partial portfolio navigation.
const PortfolioResultsID = "portfolio-results"

// HomePage renders the landing page body.
func HomePage(view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<section class=\"hero\"><h2>")
		h.text(view.Title)
		h.raw("</h2><p class=\"subtitle\">")
		h.text(view.Subtitle)
		h.raw("</p></section>")
		h.component(ctx, Slideshow(view.Featured))
		h.raw("<section class=\"featured\"><h3>Featured Work</h3>")
		h.component(ctx, WorkGrid(view.Featured, EmptyFeatured))
		h.raw("</section>")
		return h.err
	})
}

// PortfolioPage renders the full portfolio body.
func PortfolioPage(view PortfolioView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<section class=\"portfolio\"><h2>Portfolio</h2>")
		h.component(ctx, PortfolioResults(view))
		h.raw("</section>")
		return h.err
	})
}

// PortfolioResults renders the role filter and grid. It is also the
// fragment returned to partial navigation requests.
func PortfolioResults(view PortfolioView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		empty := EmptyPortfolio
		if view.Total > 0 {
			empty = EmptyRoleSelection
		}
		h := newHTMLWriter(w)
		h.raw("<div")
		h.attr("id", PortfolioResultsID)
		h.raw(">")
		h.component(ctx, RoleFilter(view.Roles, view.ActiveRole))
		h.component(ctx, WorkGrid(view.Works, empty))
		h.raw("</div>")
		return h.err
	})
}

// AboutPage renders the biography page body.
func AboutPage(view AboutView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div class=\"about\"><div class=\"headshot\">")
		if view.HeadshotURL != "" {
			h.raw("<img")
			h.url("src", templ.URL(view.HeadshotURL))
			h.raw(" alt=\"Headshot\">")
		}
		h.raw("</div><div><h2>About the Artist</h2><p class=\"bio\">")
		h.text(view.Bio)
		h.raw("</p></div></div>")
		return h.err
	})
}

// ContactPage renders the contact page body.
func ContactPage(view ContactView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<section class=\"contact\"><h2>Contact Me</h2><p>Email: <a")
		h.url("href", templ.URL("mailto:"+view.Email))
		h.raw(">")
		h.text(view.Email)
		h.raw("</a></p>")
		links := []struct{ label, href string }{
			{label: "Instagram", href: view.Instagram},
			{label: "Twitter/X", href: view.Twitter},
			{label: "Website", href: view.Website},
		}
		h.raw("<ul class=\"social-links\">")
		for _, link := range links {
			if link.href == "" {
				continue
			}
			h.raw("<li>")
			h.text(link.label)
			h.raw(": <a rel=\"noopener\"")
			h.url("href", templ.URL(link.href))
			h.raw(">")
			h.text(link.href)
			h.raw("</a></li>")
		}
		h.raw("</ul></section>")
		return h.err
	})
}

// ErrorPage renders the body for 404 and 5xx responses.
func ErrorPage(view ErrorView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := view.Heading
		if heading == "" {
			heading = ErrorHeading(view.StatusCode)
		}
		h := newHTMLWriter(w)
		h.raw("<section class=\"error-state\"><h2>")
		h.text(heading)
		h.raw("</h2><p>")
		h.text(view.Message)
		h.raw("</p><p><a href=\"/\">Back to home</a></p></section>")
		return h.err
	})
}

// ErrorHeading returns the heading for an error status.
func ErrorHeading(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}
