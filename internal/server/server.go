package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/live-sports-service/internal/aggregator"
	"github.com/preston-bernstein/live-sports-service/internal/app/scores"
	appteams "github.com/preston-bernstein/live-sports-service/internal/app/teams"
	"github.com/preston-bernstein/live-sports-service/internal/cache"
	"github.com/preston-bernstein/live-sports-service/internal/config"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	httpserver "github.com/preston-bernstein/live-sports-service/internal/http"
	"github.com/preston-bernstein/live-sports-service/internal/http/handlers"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
	"github.com/preston-bernstein/live-sports-service/internal/providers"
	"github.com/preston-bernstein/live-sports-service/internal/snapshots"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
	"github.com/preston-bernstein/live-sports-service/internal/warmer"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	cache         *cache.Cache
	httpServer    httpServer
	metricsServer httpServer
	warmer        Warmer
	snapshots     snapshotComponents
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider, cache, and warm-up wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithFetcher(cfg, logger, nil, nil)
}

// newServerWithFetcher builds the server around fetcher; a nil fetcher is built from cfg.
func newServerWithFetcher(cfg config.Config, logger *slog.Logger, fetcher providers.SportFetcher, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	tables, err := teams.Load()
	if err != nil {
		return nil, fmt.Errorf("load team tables: %w", err)
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if fetcher == nil {
		fetcher = newProviderFactory(logger, recorder, tables).build(cfg)
	}
	snaps := buildSnapshots(cfg.Snapshots, logger)
	scoreCache := buildCache(fetcher, snaps.mirror, logger, recorder)
	w := warmer.New(scoreCache, sports.All(), warmer.Config{
		OnStart:  cfg.Warm.OnStart,
		Interval: cfg.Warm.Interval,
	}, logger, recorder, nil)
	httpSrv := buildHTTPServer(cfg, scoreCache, tables, snaps.store, w, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		cache:         scoreCache,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		warmer:        w,
		snapshots:     snaps,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, w Warmer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		warmer:     w,
	}
}

func buildCache(fetcher providers.SportFetcher, mirror *snapshots.Mirror, logger *slog.Logger, recorder *metrics.Recorder) *cache.Cache {
	opts := []cache.Option{cache.WithLogger(logger), cache.WithMetrics(recorder)}
	if mirror.Enabled() {
		opts = append(opts, cache.WithObservers(mirror))
	}
	return cache.New(aggregator.New(fetcher, logger), opts...)
}

func buildHTTPServer(cfg config.Config, scoreCache *cache.Cache, tables *teams.Tables, snaps snapshots.Store, w Warmer, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() warmer.Status
	if w != nil && (cfg.Warm.OnStart || cfg.Warm.Interval > 0) {
		statusFn = w.Status
	}

	handler := handlers.NewHandler(scores.NewService(scoreCache), appteams.NewService(tables), snaps, logger, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Logger:         logger,
		Metrics:        recorder,
		AllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
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
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop warmer", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.cache != nil {
		if err := s.cache.Wait(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("snapshot mirror did not drain", "error", err)
		}
	}

	if s.snapshots.redis != nil {
		if err := s.snapshots.redis.Close(); err != nil && s.logger != nil {
			s.logger.Warn("redis close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
