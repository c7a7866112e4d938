package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"sidc-converter/internal/config"
)

// Serve runs the API on cfg.Addr until ctx is cancelled, then shuts down
// within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	return serve(ctx, ln, cfg, handler, logger)
}

func serve(ctx context.Context, ln net.Listener, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("HTTP server shutting down")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
