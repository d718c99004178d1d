package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	name       string
	logger     *zap.Logger
}

func NewServer(name, addr string, handler http.Handler, logger *zap.Logger) *Server {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &Server{httpServer: s, name: name, logger: logger}
}

// Start blocks until the server stops; a graceful Stop is not reported as an error
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("service", s.name), zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server", zap.String("service", s.name))
	return s.httpServer.Shutdown(ctx)
}
