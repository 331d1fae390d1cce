package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/platform/timeouts"
	webapp "github.com/bfarth20/malexanderportfolio/internal/services/web/app"
	module "github.com/bfarth20/malexanderportfolio/internal/services/web/module"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/modules"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/revalidate"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/static"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config defines the inputs for the portfolio web server.
type Config struct {
	HTTPAddr string
	Content  module.Content
	// Pages caches page data between refreshes. Nil disables caching.
	Pages  *revalidate.Cache
	Logger *zap.Logger
	Locale language.Tag
	// Gatherer backs the metrics endpoint. Nil leaves it unmounted.
	Gatherer prometheus.Gatherer
	Now      func() time.Time
}

// Server hosts the portfolio HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler creates the root HTTP handler for the site.
func NewHandler(config Config) (http.Handler, error) {
	if config.Content == nil {
		return nil, errors.New("content reader is required")
	}
	routes := []module.Mount{{
		Prefix:  routepath.StaticPrefix,
		Handler: staticHandler(static.FS),
	}}
	if config.Gatherer != nil {
		routes = append(routes, module.Mount{
			Prefix:  routepath.Metrics,
			Handler: promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{}),
		})
	}
	return webapp.BuildRootHandler(webapp.Config{
		Dependencies: module.Dependencies{
			Content: config.Content,
			Pages:   config.Pages,
			Logger:  config.Logger,
			Locale:  config.Locale,
			Now:     config.Now,
		},
		Modules: modules.Default(),
		Routes:  routes,
	})
}

func staticHandler(assets fs.FS) http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(assets)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		// Directory listings stay hidden.
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}, nil
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	serveErr := make(chan error, 1)
	s.logger.Info("web server listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
