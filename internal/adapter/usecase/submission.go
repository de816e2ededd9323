package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"clipfund/internal/core/classify"
	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// SubmissionService implements port.SubmissionUseCase: clip intake with
// synchronous settlement. Evaluation happens exactly once at intake; there
// is no re-check loop revisiting pending submissions.
type SubmissionService struct {
	campaigns   port.CampaignRepository
	submissions port.SubmissionRepository
	metadata    port.MetadataSource
	logger      *slog.Logger
}

// NewSubmissionService creates the settlement usecase.
func NewSubmissionService(
	campaigns port.CampaignRepository,
	submissions port.SubmissionRepository,
	metadata port.MetadataSource,
	logger *slog.Logger,
) *SubmissionService {
	return &SubmissionService{
		campaigns:   campaigns,
		submissions: submissions,
		metadata:    metadata,
		logger:      logger,
	}
}

// Submit runs the intake pipeline: classify the URL, check the campaign is
// accepting, fetch metrics (degrading to the stub on failure), evaluate the
// threshold and settle against the budget ledger.
//
// A clip below the view threshold is stored pending with zero ledger
// interaction. An eligible clip is debited under the campaign row lock; if
// the remaining budget cannot cover it, the clip is still recorded as unpaid
// pending rather than rejected.
func (s *SubmissionService) Submit(ctx context.Context, submitterID, campaignID, rawURL string) (*domain.Submission, error) {
	if submitterID == "" || campaignID == "" {
		return nil, port.ErrInvalidInput
	}
	res, ok := classify.Classify(rawURL)
	if !ok {
		return nil, port.ErrURLNotRecognized
	}

	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.CanAcceptSubmissions() {
		return nil, port.ErrCampaignNotAccepting
	}

	metrics, err := s.metadata.Fetch(ctx, res.Platform, res.ContentID)
	if err != nil {
		// Defensive: sources are expected to degrade, not fail.
		s.logger.Warn("metadata source error, recording degraded stub",
			slog.String("platform", res.Platform),
			slog.Any("error", err))
		metrics = domain.DegradedMetrics()
	}

	sub := &domain.Submission{
		ID:          uuid.NewString(),
		CampaignID:  c.ID,
		SubmitterID: submitterID,
		URL:         rawURL,
		Platform:    res.Platform,
		ContentID:   res.ContentID,
		Metrics:     metrics,
		Status:      domain.SubmissionStatusPending,
	}

	ev := domain.EvaluateSubmission(c, metrics)
	if !ev.Eligible {
		if err = s.submissions.Create(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	}

	if err = s.submissions.CreateWithDebit(ctx, sub, ev.Amount); err != nil {
		return nil, err
	}
	if sub.Status == domain.SubmissionStatusPending {
		s.logger.Info("eligible clip recorded unpaid: budget exhausted",
			slog.String("campaign_id", c.ID),
			slog.String("submission_id", sub.ID),
			slog.Int64("amount", ev.Amount))
	}
	return sub, nil
}

// Get returns a submission by id.
func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.submissions.GetByID(ctx, id)
}

// ListByCampaign returns a campaign's submissions.
func (s *SubmissionService) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Submission, error) {
	return s.submissions.ListByCampaign(ctx, campaignID)
}

// ListBySubmitter returns a submitter's submissions.
func (s *SubmissionService) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Submission, error) {
	return s.submissions.ListBySubmitter(ctx, submitterID)
}
