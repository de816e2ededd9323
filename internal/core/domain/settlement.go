package domain

import "github.com/shopspring/decimal"

var million = decimal.NewFromInt(1_000_000)

// Evaluation is the outcome of scoring a clip against a campaign at intake.
type Evaluation struct {
	// Eligible is true when the view count met the campaign threshold.
	Eligible bool
	// Amount is the payout in cents the clip earns if the budget can cover
	// it. Zero when not eligible.
	Amount int64
}

// PayoutCents computes (viewCount / 1_000_000) * ratePerMillion rounded
// half-up to the minor unit. The intermediate math is decimal so that rates
// that do not divide evenly are not truncated.
func PayoutCents(viewCount, ratePerMillion int64) int64 {
	return decimal.NewFromInt(viewCount).
		Div(million).
		Mul(decimal.NewFromInt(ratePerMillion)).
		Round(0).
		IntPart()
}

// EvaluateSubmission scores metrics against the campaign threshold. It is a
// pure computation; whether an eligible payout is actually honored depends on
// the ledger debit, which happens under the campaign row lock.
func EvaluateSubmission(c *Campaign, m ClipMetrics) Evaluation {
	if m.ViewCount < c.MinimumViews {
		return Evaluation{}
	}
	return Evaluation{
		Eligible: true,
		Amount:   PayoutCents(m.ViewCount, c.RatePerMillion),
	}
}
