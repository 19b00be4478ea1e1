package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/domain"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/handlers"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
)

// maxBodyBytes caps request bodies at 2 MB, matching what the form shells send.
const maxBodyBytes = 2 << 20

type RouterConfig struct {
	HealthHandler    *handlers.HealthHandler
	ProjectHandler   *handlers.ProjectHandler
	CaregiverHandler *handlers.CaregiverHandler
	FundHandler      *handlers.FundHandler
	ActivityHandler  *handlers.ActivityHandler
	DashboardHandler *handlers.DashboardHandler
	Log              zerolog.Logger
	Secure           func(http.Handler) http.Handler
	CORS             func(http.Handler) http.Handler
	IPRateLimit      func(http.Handler) http.Handler
	Metrics          bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	admin := middleware.RequireRole(domain.RoleAdmin)
	staff := middleware.RequireRole(domain.RoleAdmin, domain.RoleDirector, domain.RoleEmployee)
	fieldStaff := middleware.RequireRole(domain.RoleDirector, domain.RoleEmployee)

	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(middleware.ResolveRole)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	r.Use(limitBody)
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)

		r.Route("/projects", func(r chi.Router) {
			r.With(admin).Post("/", cfg.ProjectHandler.Create)
			r.With(staff).Get("/", cfg.ProjectHandler.List)
			r.With(admin).Patch("/{id}/status", cfg.ProjectHandler.SetStatus)
		})

		r.Route("/caregivers", func(r chi.Router) {
			r.With(fieldStaff).Post("/", cfg.CaregiverHandler.Create)
			r.With(staff).Get("/", cfg.CaregiverHandler.List)
		})

		r.Route("/funds", func(r chi.Router) {
			r.With(fieldStaff).Post("/", cfg.FundHandler.Create)
			r.With(staff).Get("/", cfg.FundHandler.List)
		})

		r.Route("/activities", func(r chi.Router) {
			r.With(fieldStaff).Post("/", cfg.ActivityHandler.Create)
			r.With(staff).Get("/", cfg.ActivityHandler.List)
		})

		r.With(admin).Get("/dashboard/summary", cfg.DashboardHandler.Summary)
	})

	return r
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("role", string(middleware.RoleFromContext(r.Context()))).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
