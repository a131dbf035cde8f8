package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/history"
	"passfort-hq/passfort/pkg/telemetry/metrics"
)

// Server is the passfort HTTP API server.
type Server struct {
	config     *config.ServerConfig
	analyzer   atomic.Pointer[analyzer.Analyzer]
	words      []string
	collector  *metrics.Collector
	store      *history.Store // nil when history is disabled
	httpServer *http.Server
	logger     *slog.Logger

	mu        sync.Mutex
	isRunning bool
}

// Options carries the server's collaborators.
type Options struct {
	// Analyzer is the initial analysis engine. Required.
	Analyzer *analyzer.Analyzer

	// Words is the passphrase word list. Nil means the built-in list.
	Words []string

	// Collector records metrics. Nil disables the /metrics endpoint.
	Collector *metrics.Collector

	// Store records analysis history. Nil disables recording.
	Store *history.Store

	// Logger receives request and lifecycle logs.
	Logger *slog.Logger
}

// NewServer creates an API server.
func NewServer(cfg *config.ServerConfig, opts Options) *Server {
	if opts.Analyzer == nil {
		opts.Analyzer = analyzer.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		config:    cfg,
		words:     opts.Words,
		collector: opts.Collector,
		store:     opts.Store,
		logger:    opts.Logger,
	}
	s.analyzer.Store(opts.Analyzer)
	return s
}

// SwapAnalyzer atomically replaces the analysis engine. In-flight
// requests finish with the engine they started with.
func (s *Server) SwapAnalyzer(a *analyzer.Analyzer) {
	if a == nil {
		return
	}
	s.analyzer.Store(a)
}

// Analyzer returns the currently active engine.
func (s *Server) Analyzer() *analyzer.Analyzer {
	return s.analyzer.Load()
}

// Start runs the server and blocks until ctx is canceled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        s.routes(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting api server", "address", s.config.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	s.logger.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// routes builds the handler chain: recovery wraps logging wraps the
// mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/generate", s.handleGenerate)
	mux.HandleFunc("POST /v1/passphrase", s.handlePassphrase)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.collector != nil {
		mux.Handle("GET /metrics", s.collector.Handler())
	}
	return s.withRecovery(s.withRequestLog(mux))
}
