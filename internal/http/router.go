package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/live-sports-service/internal/http/handlers"
	"github.com/preston-bernstein/live-sports-service/internal/http/middleware"
	"github.com/preston-bernstein/live-sports-service/internal/metrics"
)

// RouterConfig carries the cross-cutting router settings.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/all", handler.All)
	r.Get("/sport/{"+handlers.SportParam+"}", handler.Sport)
	// Body-carrying GET is accepted for older clients.
	r.Get("/sports", handler.Sports)
	r.Post("/sports", handler.Sports)
	r.Get("/teams/{"+handlers.SportParam+"}", handler.Teams)
	r.Get("/snapshots/{"+handlers.SportParam+"}", handler.Snapshot)

	return r
}
