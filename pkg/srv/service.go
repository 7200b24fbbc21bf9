package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/chatlog/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is done or any service's
// Start returns. Services are then shut down in reverse order of
// registration. The first Start error, if any, is returned.
func Run(ctx context.Context, services ...Service) error {
	logger := log.FromCtx(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			done <- service.Start(runCtx)
		}(service)
	}

	var startErr error
	select {
	case <-runCtx.Done():
	case startErr = <-done:
		if startErr != nil && !errors.Is(startErr, context.Canceled) {
			logger.Error().Err(startErr).Msg("service stopped with error")
		}
	}
	cancel()

	shutdownCtx := context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}

	if errors.Is(startErr, context.Canceled) {
		return nil
	}
	return startErr
}
