package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
	"clipfund/internal/core/port/mocks"
)

func TestCreateCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignService(campaigns, submissions)

	c, err := svc.Create(context.Background(), "creator", port.CreateCampaignInput{
		Title:          "  Launch week  ",
		TotalBudget:    500_00,
		RatePerMillion: 50_00,
		MinimumViews:   100_000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Launch week", c.Title)
	assert.Equal(t, domain.CampaignStatusDraft, c.Status)
	assert.Zero(t, c.RemainingBudget)
}

func TestCreateCampaignValidation(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)
	svc := NewCampaignService(campaigns, submissions)

	cases := []struct {
		name string
		in   port.CreateCampaignInput
	}{
		{"empty title", port.CreateCampaignInput{TotalBudget: 100_00, RatePerMillion: 10_00}},
		{"zero budget", port.CreateCampaignInput{Title: "t", RatePerMillion: 10_00}},
		{"negative budget", port.CreateCampaignInput{Title: "t", TotalBudget: -1, RatePerMillion: 10_00}},
		{"zero rate", port.CreateCampaignInput{Title: "t", TotalBudget: 100_00}},
		{"negative threshold", port.CreateCampaignInput{Title: "t", TotalBudget: 100_00, RatePerMillion: 10_00, MinimumViews: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "creator", tc.in)
			assert.ErrorIs(t, err, port.ErrInvalidInput)
		})
	}
}

func TestPauseAndResume(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	c := activeCampaign()
	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(c, nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.CampaignStatusActive, domain.CampaignStatusPaused).
		Return(nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.CampaignStatusPaused, domain.CampaignStatusActive).
		Return(nil)

	svc := NewCampaignService(campaigns, submissions)

	require.NoError(t, svc.Pause(context.Background(), "creator", "c1"))
	require.NoError(t, svc.Resume(context.Background(), "creator", "c1"))
}

func TestPauseNotOwner(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(activeCampaign(), nil)

	svc := NewCampaignService(campaigns, submissions)

	err := svc.Pause(context.Background(), "stranger", "c1")
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestPauseInvalidState(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	c := activeCampaign()
	c.Status = domain.CampaignStatusDraft
	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(c, nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.CampaignStatusActive, domain.CampaignStatusPaused).
		Return(port.ErrConflict)

	svc := NewCampaignService(campaigns, submissions)

	err := svc.Pause(context.Background(), "creator", "c1")
	assert.ErrorIs(t, err, port.ErrConflict)
}

func TestDeleteWithObligations(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(activeCampaign(), nil)
	campaigns.EXPECT().Delete(mock.Anything, "c1").Return(port.ErrOutstandingPayouts)

	svc := NewCampaignService(campaigns, submissions)

	err := svc.Delete(context.Background(), "creator", "c1")
	assert.ErrorIs(t, err, port.ErrOutstandingPayouts)
}

func TestStats(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(activeCampaign(), nil)
	submissions.EXPECT().CampaignStats(mock.Anything, "c1").Return(&port.CampaignStats{
		Total:        4,
		Pending:      1,
		Approved:     2,
		Paid:         1,
		TotalPaidOut: 75_00,
	}, nil)

	svc := NewCampaignService(campaigns, submissions)

	stats, err := svc.Stats(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(75_00), stats.TotalPaidOut)
}

func TestStatsUnknownCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	submissions := mocks.NewMockSubmissionRepository(t)

	campaigns.EXPECT().GetByID(mock.Anything, "nope").Return(nil, port.ErrCampaignNotFound)

	svc := NewCampaignService(campaigns, submissions)

	_, err := svc.Stats(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}
