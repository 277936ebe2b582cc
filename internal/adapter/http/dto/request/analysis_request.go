package request

import "strings"

// AnalystActionRequest identifies the acting analyst for lock routes.
type AnalystActionRequest struct {
	AnalystID string `json:"analyst_id" binding:"required"`
}

func (r AnalystActionRequest) ResolveAnalystID() string {
	return strings.TrimSpace(r.AnalystID)
}

// ApproveRequest carries the approved credit conditions.
type ApproveRequest struct {
	AnalystID      string  `json:"analyst_id" binding:"required"`
	ApprovedAmount float64 `json:"approved_amount" binding:"required,gt=0"`
	InterestRate   float64 `json:"interest_rate" binding:"gte=0"`
	TermMonths     int     `json:"term_months" binding:"required,gt=0"`
}

// RejectRequest carries the rejection reason.
type RejectRequest struct {
	AnalystID string `json:"analyst_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// ReturnRequest flags documents for correction and re-opens the document phase.
type ReturnRequest struct {
	AnalystID    string   `json:"analyst_id" binding:"required"`
	DocumentIDs  []string `json:"document_ids" binding:"required,min=1"`
	Instructions string   `json:"instructions" binding:"required"`
}
