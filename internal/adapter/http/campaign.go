package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

type createCampaignRequest struct {
	Title          string     `json:"title"`
	TotalBudget    int64      `json:"total_budget"`
	RatePerMillion int64      `json:"rate_per_million"`
	MinimumViews   int64      `json:"minimum_views"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

type campaignResponse struct {
	ID              string     `json:"id"`
	CreatorID       string     `json:"creator_id"`
	Title           string     `json:"title"`
	TotalBudget     int64      `json:"total_budget"`
	RemainingBudget int64      `json:"remaining_budget"`
	RatePerMillion  int64      `json:"rate_per_million"`
	MinimumViews    int64      `json:"minimum_views"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		CreatorID:       c.CreatorID,
		Title:           c.Title,
		TotalBudget:     c.TotalBudget,
		RemainingBudget: c.RemainingBudget,
		RatePerMillion:  c.RatePerMillion,
		MinimumViews:    c.MinimumViews,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		ExpiresAt:       c.ExpiresAt,
	}
}

// handleCampaignCreate stores a new draft campaign for the authenticated
// creator.
func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	creatorID := h.requireSubject(w, r)
	if creatorID == "" {
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.Create(r.Context(), creatorID, port.CreateCampaignInput{
		Title:          req.Title,
		TotalBudget:    req.TotalBudget,
		RatePerMillion: req.RatePerMillion,
		MinimumViews:   req.MinimumViews,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleCampaignGet returns a campaign with its budget snapshot.
func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := toCampaignResponse(&view.Campaign)
	resp.TotalBudget = view.Budget.TotalBudget
	resp.RemainingBudget = view.Budget.RemainingBudget
	writeJSON(w, http.StatusOK, resp)
}

// handleCampaignList returns the authenticated creator's campaigns.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	creatorID := h.requireSubject(w, r)
	if creatorID == "" {
		return
	}
	list, err := h.campaigns.ListByCreator(r.Context(), creatorID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignPause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Pause)
}

func (h *Handler) handleCampaignResume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Resume)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	actorID := h.requireSubject(w, r)
	if actorID == "" {
		return
	}
	if err := h.campaigns.Delete(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignStats returns aggregated settlement outcomes.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.campaigns.Stats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleCampaignSubmissions lists a campaign's submissions.
func (h *Handler) handleCampaignSubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.submissions.ListByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(list))
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, id string) error) {
	actorID := h.requireSubject(w, r)
	if actorID == "" {
		return
	}
	if err := fn(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
