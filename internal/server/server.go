package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/raveberry/netinfo-agent/internal/constants"
)

// Server wraps HTTP serving of the admin pages.
type Server struct {
	httpServer *http.Server
}

// New creates a configured HTTP server from a route table.
func New(addr string, routes map[string]http.Handler) *Server {
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.Handle(pattern, handler)
	}
	mux.HandleFunc(constants.RouteHealthz, handleHealthz)

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
	}
}

// Run blocks and serves HTTP traffic until Shutdown.
func (s *Server) Run() (err error) {
	if err = s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Run: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown(ctx context.Context) (err error) {
	if err = s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("Shutdown: %w", err)
	}

	return nil
}

// handleHealthz answers liveness checks without authentication and without
// touching the network probes.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
