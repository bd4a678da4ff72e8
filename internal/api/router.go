package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Tender/internal/config"
	"github.com/MikeSquared-Agency/Tender/internal/hermes"
	"github.com/MikeSquared-Agency/Tender/internal/scoring"
	"github.com/MikeSquared-Agency/Tender/internal/sentiment"
	"github.com/MikeSquared-Agency/Tender/internal/store"
)

// NewRouter wires the API. h and sc may be nil when NATS or the sentiment
// service are not configured.
func NewRouter(s store.Store, h hermes.Client, sc sentiment.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit))

	region := resolveRegion(cfg.Scoring.DefaultRegion, scoring.RegionGlobal)

	catalog := NewCatalogHandler()
	eval := NewEvaluationHandler(h, region, logger)
	buyers := NewBuyersHandler(s, sc, eval, region, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/attributes", catalog.Attributes)
		r.Get("/attributes/{key}", catalog.Attribute)
		r.Get("/regions", catalog.Regions)
		r.Get("/rankings", catalog.Rankings)

		r.Post("/targets", eval.Targets)
		r.Post("/score", eval.Score)
		r.Post("/sheets/evaluate", eval.EvaluateSheet)

		r.Group(func(r chi.Router) {
			r.Use(TokenAuthMiddleware(cfg.Server.APIToken))
			r.Get("/buyers", buyers.List)
			r.Get("/buyers/{name}", buyers.Get)
			r.Get("/buyers/{name}/analysis", buyers.Analyze)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
