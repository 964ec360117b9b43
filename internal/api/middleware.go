package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "garden",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Count of processed HTTP requests",
	}, []string{"method", "route", "status"})

	requestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "garden",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Latency distribution of HTTP handlers",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"method", "route", "status"})

	pageCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "garden",
		Subsystem: "api",
		Name:      "page_cache_total",
		Help:      "Page cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(requestTotal, requestLatency, pageCacheTotal)
}

// metricsMiddleware records request counts and latency per route pattern
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(status),
		}
		requestTotal.With(labels).Inc()
		requestLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// localeMiddleware picks the single locale every fetch of the request uses
func (s *Server) localeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := s.deps.Routing.Pick(r.URL.Query().Get("locale"))
		next.ServeHTTP(w, r.WithContext(ContextWithLocale(r.Context(), locale)))
	})
}
