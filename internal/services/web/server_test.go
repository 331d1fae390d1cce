package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/content/fixture"
	"github.com/bfarth20/malexanderportfolio/internal/platform/metrics"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"
)

func newConfig(t *testing.T) Config {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("metrics.New() error = %v", err)
	}
	reader := content.NewService(fixture.Sample(), content.Sources{
		Settings: content.SourceRef{DatabaseID: fixture.SampleSettingsDatabase},
		Works:    content.SourceRef{DatabaseID: fixture.SampleWorksDatabase},
	}, content.WithRecorder(m))
	return Config{
		HTTPAddr: "127.0.0.1:0",
		Content:  reader,
		Pages:    revalidate.New(time.Hour, revalidate.WithRecorder(m)),
		Locale:   language.AmericanEnglish,
		Gatherer: reg,
		Now:      func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandlerRequiresContent(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}); err == nil {
		t.Fatal("NewHandler() error = nil without content reader")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.HTTPAddr = " "
	if _, err := NewServer(cfg); err == nil {
		t.Fatal("NewServer() error = nil without address")
	}
}

func TestSiteRoutes(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(newConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/", wantStatus: http.StatusOK, wantBody: "Featured Work"},
		{path: "/portfolio", wantStatus: http.StatusOK, wantBody: `id="portfolio-results"`},
		{path: "/portfolio?role=Painting", wantStatus: http.StatusOK, wantBody: `data-title="Harbor"`},
		{path: "/about", wantStatus: http.StatusOK, wantBody: "Painter based in Portland."},
		{path: "/contact", wantStatus: http.StatusOK, wantBody: "studio@example.com"},
		{path: "/up", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{path: "/works/moth", wantStatus: http.StatusNotFound, wantBody: "Page not found"},
		{path: "/portfolio/", wantStatus: http.StatusNotFound, wantBody: "Page not found"},
	}
	for _, tc := range tests {
		rr := get(t, h, tc.path, nil)
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, tc.wantStatus)
		}
		if !strings.Contains(rr.Body.String(), tc.wantBody) {
			t.Fatalf("%s body missing %q", tc.path, tc.wantBody)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s missing request id", tc.path)
		}
	}
}

func TestPortfolioPartialNavigation(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(newConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := get(t, h, "/portfolio?role=Illustration", http.Header{"Hx-Request": {"true"}})
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("partial response contains document chrome")
	}
	if !strings.Contains(body, `data-title="Moth"`) || strings.Contains(body, "Harbor") {
		t.Fatalf("partial body = %s", body)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(newConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	css := get(t, h, "/static/site.css", nil)
	if css.Code != http.StatusOK {
		t.Fatalf("css status = %d", css.Code)
	}
	if ct := css.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("content-type = %q, want text/css", ct)
	}
	js := get(t, h, "/static/gallery.js", nil)
	if js.Code != http.StatusOK || !strings.Contains(js.Body.String(), "data-lightbox") {
		t.Fatalf("gallery.js status = %d", js.Code)
	}
	if listing := get(t, h, "/static/", nil); listing.Code != http.StatusNotFound {
		t.Fatalf("directory listing status = %d", listing.Code)
	}
	if missing := get(t, h, "/static/missing.css", nil); missing.Code != http.StatusNotFound {
		t.Fatalf("missing asset status = %d", missing.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/static/site.css", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", rr.Code)
	}
}

func TestMetricsEndpointExposesCollectors(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(newConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	get(t, h, "/", nil)
	get(t, h, "/", nil)

	rr := get(t, h, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`portfolio_content_fetch_total{operation="works",outcome="ok"} 1`,
		`portfolio_page_cache_total{page="home",result="refresh"} 1`,
		`portfolio_page_cache_total{page="home",result="hit"} 1`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics missing %q:\n%s", marker, body)
		}
	}
}

func TestMetricsUnmountedWithoutGatherer(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.Gatherer = nil
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if rr := get(t, h, "/metrics", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("metrics status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(newConfig(t))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/up")
	if err != nil {
		t.Fatalf("GET /up: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "ok") {
		t.Fatalf("GET /up = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestNilServer(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("ListenAndServe() error = nil on nil server")
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
