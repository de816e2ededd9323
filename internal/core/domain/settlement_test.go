package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutCents(t *testing.T) {
	cases := []struct {
		name  string
		views int64
		rate  int64
		want  int64
	}{
		{"exact million", 1_000_000, 50_00, 50_00},
		{"two million", 2_000_000, 50_00, 100_00},
		{"half million", 500_000, 50_00, 25_00},
		{"rounds half up", 1_500_000, 333, 500},
		{"rounds down below half", 100_000, 333, 33},
		{"tiny view count", 1, 50_00, 0},
		{"zero views", 0, 50_00, 0},
		{"odd rate odd views", 1_234_567, 789, 974},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PayoutCents(tc.views, tc.rate))
		})
	}
}

// Equal inputs always produce equal payouts; settlement must not drift
// between replays of the same metrics.
func TestPayoutCentsDeterministic(t *testing.T) {
	first := PayoutCents(1_234_567, 789)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, first, PayoutCents(1_234_567, 789))
	}
}

func TestEvaluateSubmission(t *testing.T) {
	c := &Campaign{
		RatePerMillion: 50_00,
		MinimumViews:   100_000,
	}

	ev := EvaluateSubmission(c, ClipMetrics{ViewCount: 99_999})
	assert.False(t, ev.Eligible)
	assert.Zero(t, ev.Amount)

	ev = EvaluateSubmission(c, ClipMetrics{ViewCount: 100_000})
	assert.True(t, ev.Eligible)
	assert.Equal(t, int64(5_00), ev.Amount)

	ev = EvaluateSubmission(c, ClipMetrics{ViewCount: 2_000_000})
	assert.True(t, ev.Eligible)
	assert.Equal(t, int64(100_00), ev.Amount)
}

func TestEvaluateSubmissionZeroThreshold(t *testing.T) {
	c := &Campaign{RatePerMillion: 10_00}

	ev := EvaluateSubmission(c, ClipMetrics{ViewCount: 0})
	assert.True(t, ev.Eligible)
	assert.Zero(t, ev.Amount)
}
