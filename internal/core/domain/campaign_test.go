package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAcceptSubmissions(t *testing.T) {
	cases := []struct {
		status CampaignStatus
		want   bool
	}{
		{CampaignStatusDraft, false},
		{CampaignStatusActive, true},
		{CampaignStatusPaused, false},
		{CampaignStatusCompleted, false},
	}
	for _, tc := range cases {
		c := Campaign{Status: tc.status}
		assert.Equal(t, tc.want, c.CanAcceptSubmissions(), string(tc.status))
	}
}

func TestOwnedBy(t *testing.T) {
	c := Campaign{CreatorID: "creator"}
	assert.True(t, c.OwnedBy("creator"))
	assert.False(t, c.OwnedBy("stranger"))
	assert.False(t, c.OwnedBy(""))
}
