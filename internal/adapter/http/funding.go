package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type fundingIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// handleFundingIntent creates a processor confirmation handle for a draft
// campaign. The client secret goes back to the payer's browser; the campaign
// stays draft until a confirmation path applies the credit.
func (h *Handler) handleFundingIntent(w http.ResponseWriter, r *http.Request) {
	actorID := h.requireSubject(w, r)
	if actorID == "" {
		return
	}
	intent, err := h.funding.CreateIntent(r.Context(), actorID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fundingIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	})
}

// handleFundingConfirm is the synchronous client confirmation path. Replays
// after the webhook has applied the credit return the activated campaign
// without re-crediting.
func (h *Handler) handleFundingConfirm(w http.ResponseWriter, r *http.Request) {
	actorID := h.requireSubject(w, r)
	if actorID == "" {
		return
	}
	c, err := h.funding.Confirm(r.Context(), actorID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
