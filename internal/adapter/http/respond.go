package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"clipfund/internal/core/port"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps the port sentinels onto HTTP statuses. Unmapped errors
// are logged and reported as a generic 500 to avoid leaking internals.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrSubmissionNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidInput),
		errors.Is(err, port.ErrURLNotRecognized):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrAlreadyFunded),
		errors.Is(err, port.ErrConflict),
		errors.Is(err, port.ErrOutstandingPayouts),
		errors.Is(err, port.ErrNoFundingAttempt),
		errors.Is(err, port.ErrCampaignNotAccepting):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// requireSubject writes 401 and returns "" when the identity header is
// missing.
func (h *Handler) requireSubject(w http.ResponseWriter, r *http.Request) string {
	id := subjectID(r)
	if id == "" {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing identity"})
	}
	return id
}
