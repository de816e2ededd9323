package usecase

import (
	"context"
	"errors"
	"log/slog"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// FundingService implements port.FundingUseCase. It drives a campaign from
// draft to active by converging two independent confirmation signals, the
// synchronous client confirmation and the asynchronous processor webhook,
// onto one guarded credit+activate transition. Whichever path runs first
// wins; the loser observes ErrAlreadyFunded and treats it as success.
type FundingService struct {
	campaigns port.CampaignRepository
	processor port.PaymentProcessor
	logger    *slog.Logger
}

// NewFundingService creates the funding reconciler.
func NewFundingService(campaigns port.CampaignRepository, processor port.PaymentProcessor, logger *slog.Logger) *FundingService {
	return &FundingService{campaigns: campaigns, processor: processor, logger: logger}
}

// CreateIntent obtains a confirmation handle from the processor for a draft
// campaign. Processor failures surface to the caller and leave the campaign
// draft; nothing is credited here.
func (s *FundingService) CreateIntent(ctx context.Context, actorID, campaignID string) (*port.FundingIntent, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(actorID) {
		return nil, port.ErrForbidden
	}
	if c.Status != domain.CampaignStatusDraft {
		return nil, port.ErrAlreadyFunded
	}
	if c.TotalBudget <= 0 {
		return nil, port.ErrInvalidInput
	}

	intent, err := s.processor.CreateIntent(ctx, c.ID, actorID, c.TotalBudget)
	if err != nil {
		return nil, err
	}
	if err = s.campaigns.SetPaymentRef(ctx, c.ID, intent.ID); err != nil {
		return nil, err
	}
	return intent, nil
}

// Confirm is the synchronous client confirmation path. It is optimistic: the
// confirmation arrives over the authenticated session channel. Replays and
// races against the webhook path collapse into the guarded transition. A
// draft campaign whose stored reference was dropped by a failure webhook has
// no attempt left to confirm, so the credit is refused.
func (s *FundingService) Confirm(ctx context.Context, actorID, campaignID string) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(actorID) {
		return nil, port.ErrForbidden
	}
	if c.Status == domain.CampaignStatusDraft && c.PaymentRef == "" {
		return nil, port.ErrNoFundingAttempt
	}

	err = s.campaigns.CreditAndActivate(ctx, campaignID)
	if errors.Is(err, port.ErrAlreadyFunded) {
		// The webhook path won the race; funding already applied.
		s.logger.Debug("client confirmation after funding applied",
			slog.String("campaign_id", campaignID))
	} else if err != nil {
		return nil, err
	}
	return s.campaigns.GetByID(ctx, campaignID)
}

// HandleEvent is the asynchronous webhook path. It is idempotent: a success
// event for an already-active campaign is a no-op. On a failure event the
// webhook is authoritative for the persisted record: an activation applied
// by the optimistic client path is reverted and the conflict logged for
// operator follow-up.
func (s *FundingService) HandleEvent(ctx context.Context, ev port.PaymentEvent) error {
	c, err := s.resolveCampaign(ctx, ev)
	if errors.Is(err, port.ErrCampaignNotFound) {
		// Nothing to reconcile against; redelivery would not help.
		s.logger.Debug("processor event for unknown campaign",
			slog.String("intent_id", ev.IntentID))
		return nil
	}
	if err != nil {
		return err
	}

	switch ev.Type {
	case port.PaymentEventSucceeded:
		err = s.campaigns.CreditAndActivate(ctx, c.ID)
		if errors.Is(err, port.ErrAlreadyFunded) {
			s.logger.Debug("webhook replay ignored", slog.String("campaign_id", c.ID))
			return nil
		}
		return err

	case port.PaymentEventFailed:
		if c.Status == domain.CampaignStatusActive {
			s.logger.Warn("funding conflict: processor reported failure after activation",
				slog.String("campaign_id", c.ID),
				slog.String("intent_id", ev.IntentID))
			err = s.campaigns.RevertToDraft(ctx, c.ID)
			if errors.Is(err, port.ErrConflict) {
				return nil
			}
			return err
		}
		// Campaign never left draft. Drop the stored reference so a late
		// client confirmation cannot credit the failed attempt.
		s.logger.Info("funding attempt failed",
			slog.String("campaign_id", c.ID),
			slog.String("intent_id", ev.IntentID))
		if c.PaymentRef != "" {
			return s.campaigns.ClearPaymentRef(ctx, c.ID)
		}
		return nil

	default:
		s.logger.Debug("ignoring processor event", slog.String("type", ev.Type))
		return nil
	}
}

// resolveCampaign maps an event back to a campaign, preferring the intent
// metadata and falling back to the stored payment reference. Only a missing
// row falls through; transient lookup errors surface to the caller so the
// processor redelivers.
func (s *FundingService) resolveCampaign(ctx context.Context, ev port.PaymentEvent) (*domain.Campaign, error) {
	if ev.CampaignID != "" {
		c, err := s.campaigns.GetByID(ctx, ev.CampaignID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, port.ErrCampaignNotFound) {
			return nil, err
		}
	}
	return s.campaigns.GetByPaymentRef(ctx, ev.IntentID)
}
