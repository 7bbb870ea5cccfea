package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/genie/internal/shared"
)

// NewRelayRouter builds the relay's [BasicRouter] with its middleware stack.
//
// Order, outermost first: request ID, request logging, panic recovery, CORS.
func NewRelayRouter(relay *RelayHandler, cfg shared.CORSConfig, logger *log.Logger) *BasicRouter {
	router := NewBasicRouter()
	router.Use(relayMiddleware(cfg, logger)...)
	router.Handler(relay)
	return router
}

func relayMiddleware(cfg shared.CORSConfig, logger *log.Logger) []Middleware {
	return []Middleware{RequestID(), Logger(logger), Recover(logger), CORS(cfg)}
}

const defaultShutdownGrace = 5 * time.Second

// Server runs an [http.Server] bound to a context.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	grace      time.Duration
	logger     *log.Logger
}

// NewServer creates a [Server] for handler on addr. grace bounds graceful shutdown.
func NewServer(addr string, handler http.Handler, grace time.Duration, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if grace <= 0 {
		grace = defaultShutdownGrace
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		grace:  grace,
		logger: logger,
	}
}

// Listen binds the server's address. Calling it before [Server.Start] lets callers learn
// the chosen port when addr ends in ":0".
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before [Server.Listen].
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
//
// Returns nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Infof("relay listening at http://%s", s.Addr())
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down relay", "grace", s.grace)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	err := s.httpServer.Shutdown(shutdownCtx)
	s.listener.Close()
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
