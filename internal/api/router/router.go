package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/regenplastics/leads-platform/internal/http/handlers"
	httpmiddleware "github.com/regenplastics/leads-platform/internal/http/middleware"
	"github.com/regenplastics/leads-platform/internal/leads"
	"github.com/regenplastics/leads-platform/internal/site"
	"github.com/regenplastics/leads-platform/internal/tracker"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	LeadsHandler   *leads.Handler
	HealthHandler  *handlers.HealthHandler
	SiteHandler    *site.Handler
	TrackerHandler *tracker.Handler
	MetricsHandler http.Handler

	CORSOrigin string

	// Per-IP edge limiting on the public intake route.
	IPRatePerSecond    float64
	IPRateBurst        int
	DisableIPRateLimit bool
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.CORSOrigin != "" {
		r.Use(httpmiddleware.CORS([]string{cfg.CORSOrigin}))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Get("/", cfg.HealthHandler.Health)
	r.Get("/health", cfg.HealthHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(public chi.Router) {
		if !cfg.DisableIPRateLimit {
			public.Use(httpmiddleware.IPRateLimit(cfg.IPRatePerSecond, cfg.IPRateBurst))
		}
		public.Post("/leads", cfg.LeadsHandler.Submit)
	})

	// Admin endpoints (shared-secret key checked in the request body)
	if cfg.SiteHandler != nil {
		r.Post("/admin/site", cfg.SiteHandler.Dispatch)
	}
	if cfg.TrackerHandler != nil {
		r.Post("/admin/tracker", cfg.TrackerHandler.Dispatch)
	}

	return r
}
