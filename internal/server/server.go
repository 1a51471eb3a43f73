package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"criclite/internal/cache"
	"criclite/internal/config"
	"criclite/internal/logging"
	"criclite/internal/metrics"
	"criclite/internal/provider"
	"criclite/internal/scheduler"
	"criclite/internal/web"
)

var metricsSetup = metrics.Setup

// Refresher is the minimal refresh-loop behavior the server needs.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() scheduler.Status
}

// Server wires the provider, cache, refresh scheduler, and HTTP surfaces
// together and manages their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *cache.Store
	refresher     Refresher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, p provider.MatchProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if p == nil {
		p = selectProvider(cfg, logger)
	}

	store := cache.New(cfg.Cache.FilePath, logger)
	store.Load()

	sched := scheduler.New(p, store, logger, recorder, cfg.Poll)
	httpSrv := buildHTTPServer(cfg, store, sched, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		refresher:     sched,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, refresher Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  refresher,
	}
}

func buildHTTPServer(cfg config.Config, store *cache.Store, sched *scheduler.Scheduler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() scheduler.Status
	if sched != nil {
		statusFn = sched.Status
	}

	handler := web.NewHandler(store, statusFn, logger, web.Config{
		DefaultTheme:   cfg.Web.DefaultTheme,
		StaleAfter:     cfg.Poll.IdleInterval + cfg.Poll.StaleMargin,
		RefreshSeconds: int(cfg.Poll.LiveInterval / time.Second),
	})
	router := web.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	telCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	recorder, handler, shutdown, err := metricsSetup(context.Background(), telCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && telCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + telCfg.Port,
				Handler: handler,
			},
		}
	}
	return recorder, metricsSrv, shutdown
}

// Run starts the refresh loop and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.refresher.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop refresh loop", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
