package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/handler"
	"github.com/MKhiriev/work-notes/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails, then drains open
// connections.
func (s *server) run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		errs <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errs:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		if err := <-errs; err != nil {
			return err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
