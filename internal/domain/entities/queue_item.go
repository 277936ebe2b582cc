package entities

import "financeira_xpto/internal/domain/scoring"

// AnalysisQueueItem is the read-only projection the analyst queue serves:
// the request enriched with applicant identity and SLA ranking data.
// Derived on every listing, never stored.
type AnalysisQueueItem struct {
	Request CreditRequest `json:"request"`

	ApplicantName     string `json:"applicant_name"`
	ApplicantDocument string `json:"applicant_document"`

	WaitMinutes   int64           `json:"wait_minutes"`
	PriorityScore float64         `json:"priority_score"`
	SLABand       scoring.SLABand `json:"sla_band"`
}
