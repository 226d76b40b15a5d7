package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/flock"

	"cardpress/internal/config"
	"cardpress/internal/pipeline"
	"cardpress/internal/render"
)

// Server serves the upload surface and single-card API.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	runner   *pipeline.Runner
	renderer *render.Renderer
	lock     *flock.Flock

	httpServer *http.Server
	listener   net.Listener
}

// New builds a server over the given batch runner and renderer. The
// workspace lock lives in the log directory next to the other runtime state.
func New(cfg *config.Config, runner *pipeline.Runner, renderer *render.Renderer, logger *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		runner:   runner,
		renderer: renderer,
		lock:     flock.New(filepath.Join(cfg.Paths.LogDir, "cardpress.lock")),
	}
}

// Start acquires the workspace lock and begins listening on the configured
// bind address. It returns once the listener is active; Serve completes the
// lifecycle.
func (s *Server) Start() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return errors.New("another cardpress server is already using this workspace")
	}

	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen on %s: %w", s.cfg.Paths.Bind, err)
	}
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("server listening", "addr", listener.Addr().String())
	return nil
}

// Addr reports the bound address. Valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve blocks handling requests until ctx is cancelled, then shuts down
// gracefully and releases the workspace lock.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := s.httpServer.Shutdown(shutdownCtx)
		_ = s.lock.Unlock()
		return err
	case err := <-errCh:
		_ = s.lock.Unlock()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleGenerate)
	r.Get("/template.xlsx", s.handleTemplate)
	r.Post("/api/cards", s.handleCreateCard)
	r.Get("/static/Redemption.jpg", s.handleRedemption)
	return r
}
