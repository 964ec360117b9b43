package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/storage"
)

type revalidateMessage struct {
	Message string `json:"message"`
	Usage   string `json:"usage,omitempty"`
}

type revalidateResponse struct {
	Revalidated bool     `json:"revalidated"`
	Tag         string   `json:"tag,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Now         int64    `json:"now"`
}

// authorizeRevalidation checks the shared secret. It fails closed with 500 when
// no secret is configured.
func (s *Server) authorizeRevalidation(w http.ResponseWriter, r *http.Request) bool {
	expected := s.deps.Revalidate.Secret
	if expected == "" {
		slog.Error("revalidation secret not configured")
		writeJSON(w, http.StatusInternalServerError, revalidateMessage{Message: "Revalidation not configured"})
		return false
	}

	secret := r.URL.Query().Get("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) != 1 {
		slog.Warn("invalid revalidation secret", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, revalidateMessage{Message: "Invalid secret token"})
		return false
	}
	return true
}

func (s *Server) handleRevalidateInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, revalidateMessage{
		Message: "Revalidation endpoint is active",
		Usage:   "POST /api/revalidate?secret=YOUR_SECRET&tag=home",
	})
}

func (s *Server) handleRevalidate(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeRevalidation(w, r) {
		return
	}

	ctx := r.Context()
	tag := r.URL.Query().Get("tag")
	tags := s.deps.Revalidate.DefaultTags
	if tag != "" {
		tags = []string{tag}
	}

	removed, err := s.deps.Cache.InvalidateTags(ctx, tags...)
	if err != nil {
		slog.Error("failed to revalidate", "tags", tags, "error", err)
		writeJSON(w, http.StatusInternalServerError, revalidateMessage{Message: "Error revalidating"})
		return
	}

	now := time.Now()
	slog.Info("revalidated tags", "tags", tags, "entries_removed", removed)

	if err := s.deps.Audit.RecordRevalidation(ctx, storage.NewRevalidation(tags, r.RemoteAddr, removed)); err != nil {
		slog.Error("failed to record revalidation", "tags", tags, "error", err)
	}
	s.hub.Broadcast(Event{Type: EventRevalidated, Tags: tags, Now: now.UnixMilli()})

	resp := revalidateResponse{Revalidated: true, Now: now.UnixMilli()}
	if tag != "" {
		resp.Tag = tag
	} else {
		resp.Tags = tags
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevalidationHistory(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeRevalidation(w, r) {
		return
	}

	limit := 50 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	events, err := s.deps.Audit.ListRevalidations(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list revalidations", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list revalidations")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}
