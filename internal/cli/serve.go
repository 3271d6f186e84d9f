package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	safeenv "github.com/nicocarlier/safe-env-lite"
	httpAdapter "github.com/nicocarlier/safe-env-lite/pkg/adapters/http"
	"github.com/nicocarlier/safe-env-lite/pkg/observability"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// NewInspectionHandler validates once and returns the HTTP handler that
// reports on the outcome. Validation problems do not fail the call; they
// are served from /problems.
func NewInspectionHandler(ctx context.Context, opts Options) (http.Handler, error) {
	s, err := LoadSchema(opts.SchemaPath)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	src, closeSource, err := openSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	env, err := safeenv.Load(ctx, s,
		safeenv.WithSource(src),
		safeenv.WithLogger(logger),
		safeenv.WithLifecycleHooks(metrics.Hooks()),
	)
	if err != nil && schema.Problems(err) == nil {
		return nil, err
	}

	result := httpAdapter.Result{Schema: s, Env: env, Err: err, CheckedAt: time.Now().UTC()}
	return httpAdapter.NewHandler(result, httpAdapter.WithGatherer(reg), httpAdapter.WithLogger(logger)), nil
}

// Serve runs the inspection server on addr until ctx is cancelled.
func Serve(ctx context.Context, opts Options, addr string, w io.Writer) error {
	handler, err := NewInspectionHandler(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Only this goroutine writes to w; the listener goroutine reports through
	// serverErrors.
	fmt.Fprintf(w, "Starting safeenv inspection server on %s\n", srv.Addr)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				return fmt.Errorf("failed to stop server: %w", closeErr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		fmt.Fprintln(w, "safeenv inspection server stopped")
		return nil
	}
}
