package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/cache"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/content"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/pages"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// writeJSON writes body without the envelope, for endpoints with a fixed public contract
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	results, healthy := s.deps.Health.CheckAll(ctx)
	if !healthy {
		for _, res := range results {
			if !res.Healthy {
				slog.Warn("readiness check failed", "check", res.Name, "error", res.Error)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(apiResponse{
			Success: false,
			Data:    map[string]interface{}{"status": "not_ready", "checks": results},
			Error:   &apiError{Code: "not_ready", Message: "service not ready"},
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
		"checks": results,
	})
}

// Page handlers

type taggedPage interface {
	CacheTags() []string
	FromStore() bool
}

// servePage answers from the page cache or builds and writes the page. Only
// pages built entirely from store content are cached.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, key string, build func(ctx context.Context, locale i18n.Locale) (taggedPage, error)) {
	ctx := r.Context()
	locale := LocaleFromContext(ctx)
	key = key + ":" + string(locale)

	if body, err := s.deps.Cache.Get(ctx, key); err == nil {
		pageCacheTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("page cache read failed", "key", key, "error", err)
	}
	pageCacheTotal.WithLabelValues("miss").Inc()

	page, err := build(ctx, locale)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "page not found")
			return
		}
		slog.Error("failed to assemble page", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to assemble page")
		return
	}

	body, err := json.Marshal(apiResponse{Success: true, Data: page})
	if err != nil {
		slog.Error("failed to encode page", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to encode page")
		return
	}
	body = append(body, '\n')

	// A page with fallback sections is rebuilt on every request
	if page.FromStore() {
		if err := s.deps.Cache.Set(ctx, key, body, page.CacheTags(), s.deps.CacheTTL); err != nil {
			slog.Warn("page cache write failed", "key", key, "error", err)
		}
	} else {
		slog.Debug("page has fallback sections, not cached", "key", key)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	a := s.deps.Assembler

	var build func(ctx context.Context, locale i18n.Locale) (taggedPage, error)
	switch name {
	case "home":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.Home(ctx, l), nil }
	case "services":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.Services(ctx, l), nil }
	case "projects":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.Projects(ctx, l), nil }
	case "contact":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.Contact(ctx, l), nil }
	case "about":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.About(ctx, l), nil }
	case "layout":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.Layout(ctx, l), nil }
	default:
		respondError(w, http.StatusNotFound, "not_found", "unknown page")
		return
	}

	s.servePage(w, r, "page:"+name, build)
}

func (s *Server) handleSlugs(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	a := s.deps.Assembler

	var build func(ctx context.Context, locale i18n.Locale) (taggedPage, error)
	switch collection {
	case "services":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.ServiceSlugs(ctx, l), nil }
	case "projects":
		build = func(ctx context.Context, l i18n.Locale) (taggedPage, error) { return a.ProjectSlugs(ctx, l), nil }
	default:
		respondError(w, http.StatusNotFound, "not_found", "unknown collection")
		return
	}

	s.servePage(w, r, "slugs:"+collection, build)
}

func (s *Server) handleServiceDetailPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.servePage(w, r, "page:service:"+slug, func(ctx context.Context, l i18n.Locale) (taggedPage, error) {
		return s.deps.Assembler.ServiceDetail(ctx, slug, l)
	})
}

func (s *Server) handleProjectDetailPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.servePage(w, r, "page:project:"+slug, func(ctx context.Context, l i18n.Locale) (taggedPage, error) {
		return s.deps.Assembler.ProjectDetail(ctx, slug, l)
	})
}

// Content handlers

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	slug := r.URL.Query().Get("slug")

	result, err := s.deps.Fetcher.Fetch(r.Context(), collection, slug, LocaleFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, content.ErrUnknownCollection):
			respondError(w, http.StatusNotFound, "unknown_collection", "unknown collection")
		case errors.Is(err, content.ErrSlugRequired):
			respondError(w, http.StatusBadRequest, "validation_error", "slug is required")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to fetch content")
		}
		return
	}

	if result == nil {
		respondError(w, http.StatusNotFound, "no_content", "no content available")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
