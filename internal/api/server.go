package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/cache"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/config"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/contact"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/content"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/health"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/pages"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/storage"
)

// maxContactBody caps contact form bodies
const maxContactBody = 64 << 10

// Dependencies are the collaborators the server routes to
type Dependencies struct {
	Assembler  *pages.Assembler
	Fetcher    *content.Fetcher
	Contact    *contact.Service
	Cache      cache.Cache
	CacheTTL   time.Duration
	Audit      storage.Repository
	Health     *health.Registry
	Routing    i18n.Routing
	Revalidate config.RevalidateConfig
}

// Server represents the HTTP API server
type Server struct {
	config config.ServerConfig
	router *chi.Mux
	deps   Dependencies
	hub    *Hub
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, deps Dependencies) *Server {
	if deps.Cache == nil {
		deps.Cache = cache.NewMemory()
	}
	if deps.Audit == nil {
		deps.Audit = storage.Noop{}
	}
	if deps.Health == nil {
		deps.Health = health.NewRegistry()
	}

	s := &Server{
		config: cfg,
		deps:   deps,
		hub:    NewHub(),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// Hub returns the revalidation event hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.localeMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(metricsMiddleware)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Cache"},
		MaxAge:         300,
	}))

	// The event stream is long-lived and stays outside the request timeout
	r.Get("/api/revalidate/events", s.handleRevalidationEvents)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/health", s.handleHealth)
		r.Get("/ready", s.handleReady)
		r.Handle("/metrics", promhttp.Handler())

		r.Route("/api", func(r chi.Router) {
			r.Post("/contact", s.handleContact)

			r.Route("/revalidate", func(r chi.Router) {
				r.Get("/", s.handleRevalidateInfo)
				r.Post("/", s.handleRevalidate)
				r.Get("/history", s.handleRevalidationHistory)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/services/{slug}", s.handleServiceDetailPage)
				r.Get("/projects/{slug}", s.handleProjectDetailPage)
				r.Get("/{name}", s.handlePage)
			})

			r.Get("/slugs/{collection}", s.handleSlugs)
			r.Get("/content/{collection}", s.handleContent)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"locale", LocaleFromContext(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
