package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

// Layout renders the full HTML document around the context's children.
func Layout(chrome Chrome) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := chrome.Lang
		if lang == "" {
			lang = "en"
		}
		h := newHTMLWriter(w)
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(chrome.PageTitle())
		h.raw("</title>")
		if chrome.Description != "" {
			h.raw("<meta name=\"description\"")
			h.attr("content", chrome.Description)
			h.raw("><meta property=\"og:description\"")
			h.attr("content", chrome.Description)
			h.raw(">")
		}
		h.raw("<meta property=\"og:title\"")
		h.attr("content", chrome.PageTitle())
		h.raw("><meta property=\"og:type\" content=\"website\"><link rel=\"stylesheet\"")
		h.url("href", templ.URL(routepath.Static("site.css")))
		h.raw("><script defer")
		h.url("src", templ.URL(routepath.Static("gallery.js")))
		h.raw("></script></head><body><header class=\"site-header\"><div class=\"container\"><h1 class=\"site-title\"><a")
		h.url("href", templ.URL(routepath.Root))
		h.raw(">")
		h.text(chrome.ArtistName)
		h.raw("</a></h1>")
		h.component(ctx, Nav(chrome.Active))
		h.raw("</div></header><main class=\"container\" id=\"main\">")
		h.component(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		h.component(ctx, Footer(chrome))
		h.raw("</body></html>")
		return h.err
	})
}

// Nav renders the primary navigation tabs, marking active as the current
// page.
func Nav(active string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<nav class=\"nav-tabs\" aria-label=\"Primary\"><ul>")
		for _, tab := range NavTabs {
			h.raw("<li><a class=\"nav-tab\"")
			h.url("href", templ.URL(tab.Path))
			if tab.Path == active {
				h.raw(" aria-current=\"page\"")
			}
			h.raw(">")
			h.text(tab.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
		return h.err
	})
}

// Footer renders the site footer with contact links.
func Footer(chrome Chrome) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		name := chrome.ArtistName
		if name == "" {
			name = DefaultArtistName
		}
		h := newHTMLWriter(w)
		h.raw("<footer class=\"site-footer\"><div class=\"container\"><div class=\"footer-row\"><div class=\"footer-name\">")
		h.text(name)
		if chrome.Location != "" {
			h.raw("<span class=\"footer-location\">• ")
			h.text(chrome.Location)
			h.raw("</span>")
		}
		h.raw("</div><div class=\"footer-links\">")
		if chrome.Email != "" {
			h.raw("<a")
			h.url("href", templ.URL("mailto:"+chrome.Email))
			h.raw(">")
			h.text(chrome.Email)
			h.raw("</a>")
		}
		if chrome.Phone != "" {
			h.raw("<a")
			h.url("href", templ.URL(TelHref(chrome.Phone)))
			h.raw(">")
			h.text(chrome.Phone)
			h.raw("</a>")
		}
		h.raw("</div></div><p class=\"footer-copyright\">© ")
		h.text(strconv.Itoa(chrome.Year))
		h.raw(" ")
		h.text(name)
		h.raw("</p></div></footer>")
		return h.err
	})
}
