package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

// WorkCard renders one grid tile. Tiles with a cover open the lightbox with
// the card's gallery; tiles without one render a placeholder.
func WorkCard(card Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		gallery, err := templ.JSONString(card.Gallery)
		if err != nil {
			return err
		}
		h := newHTMLWriter(w)
		h.raw("<li class=\"work\"")
		if card.Anchor != "" {
			h.attr("id", card.Anchor)
		}
		h.raw(">")
		if card.HasCover {
			h.raw("<button type=\"button\" class=\"work-card\" data-lightbox")
			h.attr("data-gallery", gallery)
			h.attr("data-title", card.Title)
			h.attr("aria-label", "View "+card.Title)
			h.raw("><img loading=\"lazy\"")
			h.url("src", templ.URL(card.Cover))
			h.attr("alt", card.Title)
			h.raw("><span class=\"work-caption\">")
			h.text(card.Title)
			h.raw("</span></button>")
		} else {
			h.raw("<div class=\"work-card work-placeholder\" role=\"img\"")
			h.attr("aria-label", card.Title)
			h.raw("><span class=\"work-caption\">")
			h.text(card.Title)
			h.raw("</span></div>")
		}
		if card.Meta != "" {
			h.raw("<p class=\"work-meta\">")
			h.text(card.Meta)
			h.raw("</p>")
		}
		h.raw("</li>")
		return h.err
	})
}

// WorkGrid renders cards as a grid, or empty when there are none.
func WorkGrid(cards []Card, empty string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		if len(cards) == 0 {
			h.raw("<p class=\"empty-state\">")
			h.text(empty)
			h.raw("</p>")
			return h.err
		}
		h.raw("<ul class=\"work-grid\">")
		for _, card := range cards {
			h.component(ctx, WorkCard(card))
		}
		h.raw("</ul>")
		return h.err
	})
}

// RoleFilter renders the role facet links. The active role links back to the
// unfiltered list so a second click clears the filter.
func RoleFilter(roles []string, active string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(roles) == 0 {
			return nil
		}
		h := newHTMLWriter(w)
		h.raw("<nav class=\"role-filter\" aria-label=\"Filter by role\">")
		filterLink(h, "All", routepath.Portfolio, active == "")
		for _, role := range roles {
			href := routepath.PortfolioRole(role)
			if role == active {
				href = routepath.Portfolio
			}
			filterLink(h, role, href, role == active)
		}
		h.raw("</nav>")
		return h.err
	})
}

func filterLink(h *htmlWriter, label, href string, pressed bool) {
	h.raw("<a class=\"role-chip\" role=\"button\" data-role-filter")
	h.url("href", templ.URL(href))
	h.boolAttr("aria-pressed", pressed)
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

// SlideInterval is how long each slideshow slide stays up, in milliseconds.
const SlideInterval = 6000

// Slideshow renders the featured carousel from the cards that have a cover.
func Slideshow(cards []Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		slides := make([]Card, 0, len(cards))
		for _, card := range cards {
			if card.HasCover {
				slides = append(slides, card)
			}
		}
		if len(slides) == 0 {
			return nil
		}
		h := newHTMLWriter(w)
		h.raw("<section class=\"slideshow\" aria-roledescription=\"carousel\" aria-label=\"Featured works\"")
		h.attr("data-interval", strconv.Itoa(SlideInterval))
		h.raw("><div class=\"slides\">")
		for i, slide := range slides {
			h.raw("<figure class=\"slide\"")
			h.boolAttr("aria-hidden", i != 0)
			if i == 0 {
				h.raw(" data-active")
			}
			h.raw("><img")
			if i != 0 {
				h.raw(" loading=\"lazy\"")
			}
			h.url("src", templ.URL(slide.Cover))
			h.attr("alt", slide.Title)
			h.raw("></figure>")
		}
		h.raw("</div>")
		if len(slides) > 1 {
			h.raw("<div class=\"slide-dots\">")
			for i := range slides {
				h.raw("<button type=\"button\" class=\"slide-dot\"")
				h.attr("data-slide", strconv.Itoa(i))
				h.attr("aria-label", "Go to slide "+strconv.Itoa(i+1))
				h.raw("></button>")
			}
			h.raw("</div>")
		}
		h.raw("</section>")
		return h.err
	})
}
