package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Server exposes the digest pipeline over HTTP for the bot layer to
// consume: trigger a batch, read the latest batch, check liveness.
type Server struct {
	config  ConfigProvider
	runner  Runner
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle

	digestLock sync.RWMutex
	lastDigest []domain.EnrichedItem
	lastRun    time.Time
}

// Runner executes one batch over all configured sources
type Runner interface {
	Run(ctx context.Context) []domain.EnrichedItem
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, runner Runner, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		runner:  runner,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("discord-summarizer", "r3k4ce", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(10)) // batch runs are expensive
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /digest", s.runDigestHandler)
		r.HandleFunc("GET /digest/latest", s.latestDigestHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, _ *http.Request) {
	s.digestLock.RLock()
	lastRun := s.lastRun
	s.digestLock.RUnlock()

	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"last_run": lastRun,
	}
	rest.RenderJSON(w, status)
}

// runDigestHandler runs one batch synchronously and returns the result
func (s *Server) runDigestHandler(w http.ResponseWriter, r *http.Request) {
	items := s.runner.Run(r.Context())

	s.digestLock.Lock()
	s.lastDigest = items
	s.lastRun = time.Now().UTC()
	s.digestLock.Unlock()

	rest.RenderJSON(w, digestResponse{Items: items, RunAt: time.Now().UTC()})
}

// latestDigestHandler returns the result of the most recent batch
func (s *Server) latestDigestHandler(w http.ResponseWriter, _ *http.Request) {
	s.digestLock.RLock()
	defer s.digestLock.RUnlock()

	if s.lastRun.IsZero() {
		w.WriteHeader(http.StatusNotFound)
		rest.RenderJSON(w, rest.JSON{"error": "no digest produced yet"})
		return
	}
	rest.RenderJSON(w, digestResponse{Items: s.lastDigest, RunAt: s.lastRun})
}

// digestResponse is the JSON shape for digest endpoints
type digestResponse struct {
	Items []domain.EnrichedItem `json:"items"`
	RunAt time.Time             `json:"run_at"`
}
