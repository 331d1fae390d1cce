package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bfarth20/malexanderportfolio/internal/content/fixture"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestRegisterRoutesMethodContract(t *testing.T) {
	t.Parallel()

	base := publichandler.NewBase(newDeps(fixture.Sample()))
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(base, newService(base)))

	getRR := httptest.NewRecorder()
	mux.ServeHTTP(getRR, httptest.NewRequest(http.MethodGet, routepath.Contact, nil))
	if getRR.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", getRR.Code, http.StatusOK)
	}
	if got := getRR.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("content-type = %q, want text/html", got)
	}

	headRR := httptest.NewRecorder()
	mux.ServeHTTP(headRR, httptest.NewRequest(http.MethodHead, routepath.Contact, nil))
	if headRR.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", headRR.Code, http.StatusOK)
	}

	postRR := httptest.NewRecorder()
	mux.ServeHTTP(postRR, httptest.NewRequest(http.MethodPost, routepath.Contact, nil))
	if postRR.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", postRR.Code, http.StatusMethodNotAllowed)
	}
	if got := postRR.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}
