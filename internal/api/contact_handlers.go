package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/contact"
)

type contactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type contactError struct {
	Error   string               `json:"error"`
	Details []contact.FieldError `json:"details,omitempty"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	// Unknown keys are ignored
	var req contact.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, contactError{Error: "Invalid request body"})
		return
	}

	id, err := s.deps.Contact.Submit(r.Context(), req)
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, contactError{Error: "Validation failed", Details: verr.Fields})
			return
		}

		slog.Error("failed to save contact submission", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactError{Error: "Failed to submit form. Please try again."})
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{Success: true, ID: id})
}
