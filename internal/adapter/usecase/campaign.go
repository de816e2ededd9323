package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// CampaignService implements port.CampaignUseCase: campaign CRUD plus the
// owner-gated lifecycle transitions. Funding is handled separately by
// FundingService.
type CampaignService struct {
	campaigns   port.CampaignRepository
	submissions port.SubmissionRepository
}

// NewCampaignService creates the campaign usecase.
func NewCampaignService(campaigns port.CampaignRepository, submissions port.SubmissionRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns, submissions: submissions}
}

// Create stores a new draft campaign. Budget fields are populated up front
// but no funds are held until the funding reconciler activates the campaign.
func (s *CampaignService) Create(ctx context.Context, creatorID string, in port.CreateCampaignInput) (*domain.Campaign, error) {
	in.Title = strings.TrimSpace(in.Title)
	if creatorID == "" || in.Title == "" {
		return nil, port.ErrInvalidInput
	}
	if in.TotalBudget <= 0 || in.RatePerMillion <= 0 || in.MinimumViews < 0 {
		return nil, port.ErrInvalidInput
	}

	c := &domain.Campaign{
		ID:             uuid.NewString(),
		CreatorID:      creatorID,
		Title:          in.Title,
		TotalBudget:    in.TotalBudget,
		RatePerMillion: in.RatePerMillion,
		MinimumViews:   in.MinimumViews,
		Status:         domain.CampaignStatusDraft,
		ExpiresAt:      in.ExpiresAt,
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the campaign with its ledger snapshot.
func (s *CampaignService) Get(ctx context.Context, id string) (*port.CampaignView, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := s.campaigns.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{Campaign: *c, Budget: snap}, nil
}

// ListByCreator returns the creator's campaigns.
func (s *CampaignService) ListByCreator(ctx context.Context, creatorID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByCreator(ctx, creatorID)
}

// Pause freezes an active campaign. Only the owning creator may pause;
// the remaining budget stays untouched.
func (s *CampaignService) Pause(ctx context.Context, actorID, id string) error {
	if err := s.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return s.campaigns.UpdateStatus(ctx, id, domain.CampaignStatusActive, domain.CampaignStatusPaused)
}

// Resume re-opens a paused campaign for submissions.
func (s *CampaignService) Resume(ctx context.Context, actorID, id string) error {
	if err := s.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return s.campaigns.UpdateStatus(ctx, id, domain.CampaignStatusPaused, domain.CampaignStatusActive)
}

// Delete removes a campaign. The repository refuses while approved or paid
// submissions exist, so payment obligations are never orphaned.
func (s *CampaignService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return s.campaigns.Delete(ctx, id)
}

// Stats aggregates settlement outcomes for the campaign.
func (s *CampaignService) Stats(ctx context.Context, id string) (*port.CampaignStats, error) {
	if _, err := s.campaigns.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.submissions.CampaignStats(ctx, id)
}

// authorize loads the campaign and checks ownership. Every lifecycle
// transition runs through this precondition.
func (s *CampaignService) authorize(ctx context.Context, actorID, id string) error {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.OwnedBy(actorID) {
		return port.ErrForbidden
	}
	return nil
}
