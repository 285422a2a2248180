// Package httpserver exposes the values-journal HTTP API.
package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/and161185/values-journal/internal/catalog"
	"github.com/and161185/values-journal/internal/service"
)

// Pinger reports storage reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires services into echo handlers.
type Server struct {
	echo *echo.Echo
	log  *zap.Logger

	auth    service.AuthService
	entries service.EntryService
	catalog *catalog.Catalog
	db      Pinger

	signKey []byte
	clock   clockwork.Clock
}

// NewServer constructs the HTTP server with injected services.
func NewServer(log *zap.Logger, auth service.AuthService, entries service.EntryService, cat *catalog.Catalog, db Pinger, signKey []byte, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		log:     log,
		auth:    auth,
		entries: entries,
		catalog: cat,
		db:      db,
		signKey: signKey,
		clock:   clock,
	}
	s.registerRoutes()
	return s
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// now returns the request-processing instant in UTC.
func (s *Server) now() time.Time { return s.clock.Now().UTC() }
