package portfolio

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/content/fixture"
	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDeps(store *fixture.Store) module.Dependencies {
	reader := content.NewService(store, content.Sources{
		Settings: content.SourceRef{DatabaseID: fixture.SampleSettingsDatabase},
		Works:    content.SourceRef{DatabaseID: fixture.SampleWorksDatabase},
	})
	return module.Dependencies{
		Content: reader,
		Locale:  language.AmericanEnglish,
		Now:     func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func serveRequest(t *testing.T, deps module.Dependencies, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

// cardOrder returns the titles of the rendered work cards in document order.
// Cover cards carry data-title; placeholders carry an aria-label.
func cardOrder(t *testing.T, body string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	var titles []string
	for _, card := range findAll(doc, func(n *html.Node) bool { return n.Data == "li" && attr(n, "class") == "work" }) {
		if cover := findAll(card, func(n *html.Node) bool { return attr(n, "data-title") != "" }); len(cover) > 0 {
			titles = append(titles, attr(cover[0], "data-title"))
			continue
		}
		if placeholder := findAll(card, func(n *html.Node) bool { return attr(n, "role") == "img" }); len(placeholder) > 0 {
			titles = append(titles, attr(placeholder[0], "aria-label"))
		}
	}
	return titles
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		found = append(found, findAll(n, match)...)
	}
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestModuleIDAndPrefix(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "portfolio" {
		t.Fatalf("ID() = %q", got)
	}
	mount, err := New().Mount(newDeps(fixture.Sample()))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Portfolio {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("Mount() error = nil without content reader")
	}
}

func TestPortfolioRendersOrderedWorksAndRoles(t *testing.T) {
	t.Parallel()

	rr := serveRequest(t, newDeps(fixture.Sample()), httptest.NewRequest(http.MethodGet, routepath.Portfolio, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if diff := cmp.Diff([]string{"Harbor", "Moth", "Untitled", "Untitled"}, cardOrder(t, body)); diff != "" {
		t.Fatalf("card order mismatch (-want +got):\n%s", diff)
	}
	for _, marker := range []string{
		"<title>Portfolio | M. Alexander</title>",
		`aria-current="page">Portfolio</a>`,
		`href="/portfolio" aria-pressed="true">All</a>`,
		`href="/portfolio?role=Illustration" aria-pressed="false">Illustration</a>`,
		`href="/portfolio?role=Painting" aria-pressed="false">Painting</a>`,
		`id="moth"`,
		"Illustration • 2021",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestPortfolioFiltersByRole(t *testing.T) {
	t.Parallel()

	rr := serveRequest(t, newDeps(fixture.Sample()), httptest.NewRequest(http.MethodGet, routepath.PortfolioRole("Painting"), nil))
	body := rr.Body.String()
	if diff := cmp.Diff([]string{"Harbor"}, cardOrder(t, body)); diff != "" {
		t.Fatalf("filtered cards mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(body, `href="/portfolio" aria-pressed="true">Painting</a>`) {
		t.Fatal("active role chip not pressed")
	}
}

func TestPortfolioUnknownRoleShowsEmptyState(t *testing.T) {
	t.Parallel()

	rr := serveRequest(t, newDeps(fixture.Sample()), httptest.NewRequest(http.MethodGet, routepath.PortfolioRole("Sculpture"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), webtemplates.EmptyRoleSelection) {
		t.Fatal("missing role empty state")
	}
}

func TestPortfolioHTMXReturnsResultsFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.PortfolioRole("Illustration"), nil)
	req.Header.Set("HX-Request", "true")
	rr := serveRequest(t, newDeps(fixture.Sample()), req)
	body := rr.Body.String()
	if !strings.HasPrefix(body, `<div id="portfolio-results">`) {
		t.Fatalf("fragment = %q", body)
	}
	if strings.Contains(body, "<html") || strings.Contains(body, "<h2>Portfolio</h2>") {
		t.Fatal("fragment contains page chrome")
	}
	if diff := cmp.Diff([]string{"Moth", "Untitled"}, cardOrder(t, body)); diff != "" {
		t.Fatalf("fragment cards mismatch (-want +got):\n%s", diff)
	}
}

func TestPortfolioWithoutWorks(t *testing.T) {
	t.Parallel()

	store := fixture.New(fixture.Document{
		Databases:   map[string][]string{fixture.SampleSettingsDatabase: {"ds-s"}, fixture.SampleWorksDatabase: {"ds-w"}},
		DataSources: map[string][]fixture.Record{"ds-s": nil, "ds-w": nil},
	})
	rr := serveRequest(t, newDeps(store), httptest.NewRequest(http.MethodGet, routepath.Portfolio, nil))
	body := rr.Body.String()
	if !strings.Contains(body, webtemplates.EmptyPortfolio) {
		t.Fatal("missing empty portfolio state")
	}
	if strings.Contains(body, "role-filter") {
		t.Fatal("role filter rendered with no roles")
	}
}

func TestPortfolioFetchFailure(t *testing.T) {
	t.Parallel()

	store := fixture.Sample()
	store.FailOn(fixture.SampleWorksDatabase, errors.New("lookup failed"))
	rr := serveRequest(t, newDeps(store), httptest.NewRequest(http.MethodGet, routepath.Portfolio, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPortfolioFilteringReusesCachedCatalog(t *testing.T) {
	t.Parallel()

	store := fixture.Sample()
	deps := newDeps(store)
	deps.Pages = revalidate.New(time.Hour)
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	for _, path := range []string{routepath.Portfolio, routepath.PortfolioRole("Painting"), routepath.PortfolioRole("Illustration")} {
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rr.Code)
		}
	}
	if got := store.Calls("query"); got != 2 {
		t.Fatalf("query calls = %d, want 2", got)
	}
}
