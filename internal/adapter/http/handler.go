package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clipfund/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter.
// Identity is taken from the X-User-ID header populated by the external
// identity provider in front of this service; no further authentication
// happens here.
type Handler struct {
	campaigns     port.CampaignUseCase
	funding       port.FundingUseCase
	submissions   port.SubmissionUseCase
	webhookSecret string
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	funding port.FundingUseCase,
	submissions port.SubmissionUseCase,
	webhookSecret string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns:     campaigns,
		funding:       funding,
		submissions:   submissions,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.handleHealth)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignCreate)
			r.Get("/", h.handleCampaignList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleCampaignGet)
				r.Delete("/", h.handleCampaignDelete)
				r.Post("/pause", h.handleCampaignPause)
				r.Post("/resume", h.handleCampaignResume)
				r.Get("/stats", h.handleCampaignStats)
				r.Get("/submissions", h.handleCampaignSubmissions)
				r.Post("/fund", h.handleFundingIntent)
				r.Post("/fund/confirm", h.handleFundingConfirm)
			})
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", h.handleSubmissionCreate)
			r.Get("/", h.handleSubmissionList)
			r.Get("/{id}", h.handleSubmissionGet)
		})

		r.Post("/webhooks/payment", h.handlePaymentWebhook)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// subjectID extracts the authenticated subject from the identity header.
func subjectID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}
