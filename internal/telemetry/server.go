package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/astarlab/internal/logging"
)

// MetricsPath is where Serve exposes the handler.
const MetricsPath = "/metrics"

// Serve listens on addr and serves h at MetricsPath until ctx is done.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("telemetry: listen %s: %w", addr, err)
	}

	return ServeListener(ctx, l, h)
}

// ServeListener serves h at MetricsPath on l until ctx is done, then shuts
// the server down gracefully. It returns nil after a clean shutdown.
func ServeListener(ctx context.Context, l net.Listener, h http.Handler) error {
	logger := logging.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle(MetricsPath, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Metrics server starting.", "address", "http://"+l.Addr().String()+MetricsPath)
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("telemetry: metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("telemetry: metrics server shutdown: %w", err)
	}
	logger.Debug("Metrics server stopped.")

	return nil
}
