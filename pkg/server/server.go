// Package server exposes the converter as a small upload/download web flow:
// upload an export on /, confirm on /download and fetch openapi.yaml from
// /download_yaml. Each browser session gets its own pending result.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/blackcoderx/oasify/pkg/converter"
	"github.com/blackcoderx/oasify/pkg/core"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the conversion web flow.
type Server struct {
	cfg         core.ServerConfig
	convertOpts []converter.Option
	results     *storage.ResultStore
	limiter     *clientLimiter
	metrics     *metrics
	registry    *prometheus.Registry
	logger      *slog.Logger
	templates   *template.Template
}

// New wires a server from configuration. A nil registry gets a fresh one; a nil
// logger discards output.
func New(cfg core.Config, logger *slog.Logger, registry *prometheus.Registry) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	results := storage.NewResultStore(cfg.Server.ResultTTL)
	m, err := newMetrics(registry, func() float64 { return float64(results.Len()) })
	if err != nil {
		results.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Server{
		cfg:         cfg.Server,
		convertOpts: cfg.ConverterOptions(),
		results:     results,
		limiter:     newClientLimiter(cfg.Server.RatePerSecond, cfg.Server.RateBurst),
		metrics:     m,
		registry:    registry,
		logger:      logger,
		templates:   tmpl,
	}, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleUpload)
	mux.HandleFunc("GET /download", s.handleDownloadPage)
	mux.HandleFunc("GET /download_yaml", s.handleDownloadYAML)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return s.withRequestID(s.withAccessLog(mux))
}

// ListenAndServe listens on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to start listener: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured grace period.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Close releases the result store.
func (s *Server) Close() {
	s.results.Close()
}
