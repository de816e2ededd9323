package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clipfund/internal/core/domain"
)

type createSubmissionRequest struct {
	CampaignID string `json:"campaign_id"`
	URL        string `json:"url"`
}

type submissionResponse struct {
	ID            string     `json:"id"`
	CampaignID    string     `json:"campaign_id"`
	SubmitterID   string     `json:"submitter_id"`
	URL           string     `json:"url"`
	Platform      string     `json:"platform"`
	ContentID     string     `json:"content_id"`
	ViewCount     int64      `json:"view_count"`
	LikeCount     int64      `json:"like_count"`
	CommentCount  int64      `json:"comment_count"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Thumbnail     string     `json:"thumbnail"`
	MetricsOrigin string     `json:"metrics_origin"`
	Status        string     `json:"status"`
	PayoutAmount  *int64     `json:"payout_amount"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:            s.ID,
		CampaignID:    s.CampaignID,
		SubmitterID:   s.SubmitterID,
		URL:           s.URL,
		Platform:      s.Platform,
		ContentID:     s.ContentID,
		ViewCount:     s.Metrics.ViewCount,
		LikeCount:     s.Metrics.LikeCount,
		CommentCount:  s.Metrics.CommentCount,
		Title:         s.Metrics.Title,
		Author:        s.Metrics.Author,
		Thumbnail:     s.Metrics.Thumbnail,
		MetricsOrigin: string(s.Metrics.Origin),
		Status:        string(s.Status),
		PayoutAmount:  s.PayoutAmount,
		VerifiedAt:    s.VerifiedAt,
		CreatedAt:     s.CreatedAt,
	}
}

func toSubmissionResponses(list []domain.Submission) []submissionResponse {
	out := make([]submissionResponse, 0, len(list))
	for i := range list {
		out = append(out, toSubmissionResponse(&list[i]))
	}
	return out
}

// handleSubmissionCreate runs clip intake for the authenticated submitter.
// The response carries the settlement outcome: approved with the computed
// payout, or pending.
func (h *Handler) handleSubmissionCreate(w http.ResponseWriter, r *http.Request) {
	submitterID := h.requireSubject(w, r)
	if submitterID == "" {
		return
	}
	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	sub, err := h.submissions.Submit(r.Context(), submitterID, req.CampaignID, req.URL)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// handleSubmissionGet returns a submission by id.
func (h *Handler) handleSubmissionGet(w http.ResponseWriter, r *http.Request) {
	sub, err := h.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// handleSubmissionList returns the authenticated submitter's submissions.
func (h *Handler) handleSubmissionList(w http.ResponseWriter, r *http.Request) {
	submitterID := h.requireSubject(w, r)
	if submitterID == "" {
		return
	}
	list, err := h.submissions.ListBySubmitter(r.Context(), submitterID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(list))
}
