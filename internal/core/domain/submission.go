package domain

import "time"

// SubmissionStatus enumerates the disposition of a clip submission.
type SubmissionStatus string

const (
	// SubmissionStatusPending covers both below-threshold clips and
	// qualifying clips that arrived after the budget was exhausted. Pending
	// submissions carry no payout amount.
	SubmissionStatusPending SubmissionStatus = "pending"
	// SubmissionStatusApproved means the clip met the view threshold and the
	// payout was debited from the campaign budget.
	SubmissionStatusApproved SubmissionStatus = "approved"
	// SubmissionStatusRejected is set by out-of-band review.
	SubmissionStatusRejected SubmissionStatus = "rejected"
	// SubmissionStatusPaid means the approved payout has been disbursed.
	SubmissionStatusPaid SubmissionStatus = "paid"
)

// Submission is a clip posted by a submitter against a campaign, scored
// against the campaign's view-count threshold at intake time.
type Submission struct {
	ID          string
	CampaignID  string
	SubmitterID string

	URL       string
	Platform  string
	ContentID string
	Metrics   ClipMetrics

	Status SubmissionStatus
	// PayoutAmount is non-nil iff Status is approved or paid.
	PayoutAmount    *int64
	RejectionReason *string
	VerifiedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPayout reports whether the submission carries a payment obligation.
func (s *Submission) HasPayout() bool {
	return s.Status == SubmissionStatusApproved || s.Status == SubmissionStatusPaid
}
