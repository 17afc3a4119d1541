package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"webapp-standalone/core/connector"
	"webapp-standalone/core/logger"
	"webapp-standalone/core/metrics"
	"webapp-standalone/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"
)

// ErrAlreadyStarted is returned when Run is called more than once.
var ErrAlreadyStarted = errors.New("server already started")

// Server is the embedded listener hosting the deployed application.
type Server struct {
	app             *fiber.App
	conn            *connector.Connector
	logger          *zap.Logger
	shutdownTimeout time.Duration

	state atomic.Int32

	mu   sync.RWMutex
	addr net.Addr
}

// New builds the Fiber application from the connector configuration and installs
// the global middleware.
func New(conn *connector.Connector, shutdownTimeout time.Duration, logg *zap.Logger) *Server {
	app := fiber.New(conn.FiberConfig())

	// RayID first so every later log line can carry it
	app.Use(rayid.New())
	app.Use(requestLogger(logg))
	app.Use(metrics.Middleware())
	if conn.Compression {
		app.Use(compress.New())
	}

	s := &Server{
		app:             app,
		conn:            conn,
		logger:          logg,
		shutdownTimeout: shutdownTimeout,
	}
	s.setState(StateNew)
	return s
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}

// App returns the Fiber application features register their routes on.
func (s *Server) App() *fiber.App {
	return s.app
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound address once the server is running.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Run binds the listener, serves until ctx is done or the listener fails, then
// shuts down. It blocks for the whole lifetime of the server.
func (s *Server) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateNew), int32(StateStarting)) {
		return ErrAlreadyStarted
	}
	metrics.ServerState.Set(float64(StateStarting))

	ln, err := net.Listen("tcp", s.conn.Addr())
	if err != nil {
		s.setState(StateFailed)
		return fmt.Errorf("bind %s: %w", s.conn.Addr(), err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.setState(StateRunning)
	s.logger.Info("Server started", zap.String("address", ln.Addr().String()))

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		if err := s.app.ShutdownWithTimeout(s.shutdownTimeout); err != nil {
			s.setState(StateFailed)
			return fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
		s.setState(StateStopped)
		return nil
	case err := <-errCh:
		s.setState(StateFailed)
		if err == nil {
			err = errors.New("listener closed")
		}
		return fmt.Errorf("serve: %w", err)
	}
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
	metrics.ServerState.Set(float64(st))
}
