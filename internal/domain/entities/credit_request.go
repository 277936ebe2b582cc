package entities

import "time"

// RequestStatus represents the lifecycle of a credit request (solicitação de crédito).
//
// Domain notes:
//   - The credit-service is the source of truth for request state.
//   - Analyst decisions (approve/reject/return) are only valid from em_analise
//     and only by the analyst holding the lock.
//   - aprovado, reprovado, cancelado and efetivada are terminal for this service;
//     efetivada is reached from aprovado by the disbursement step.

type RequestStatus string

const (
	StatusRascunho               RequestStatus = "rascunho"
	StatusAguardandoDocumentacao RequestStatus = "aguardando_documentacao"
	StatusEmAnalise              RequestStatus = "em_analise"
	StatusAprovado               RequestStatus = "aprovado"
	StatusReprovado              RequestStatus = "reprovado"
	StatusCancelado              RequestStatus = "cancelado"
	StatusEfetivada              RequestStatus = "efetivada"
)

// Cancellable reports whether an owner may still cancel a request in this status.
func (s RequestStatus) Cancellable() bool {
	switch s {
	case StatusRascunho, StatusAguardandoDocumentacao, StatusEmAnalise:
		return true
	}
	return false
}

// AnalystLock is the exclusive claim one analyst holds on a request under
// analysis. A nil *AnalystLock means the request is unlocked; the holder and
// timestamp are always set together.
type AnalystLock struct {
	AnalystID string    `json:"analyst_id"`
	LockedAt  time.Time `json:"locked_at"`
}

// ApprovalOutcome holds the approved credit conditions, including the fixed
// monthly installment computed with the Price (French) amortization method.
type ApprovalOutcome struct {
	AnalystID        string    `json:"analyst_id"`
	ApprovedAmount   float64   `json:"approved_amount"`
	InterestRate     float64   `json:"interest_rate"`
	TermMonths       int       `json:"term_months"`
	InstallmentValue float64   `json:"installment_value"`
	DecidedAt        time.Time `json:"decided_at"`
}

// RejectionOutcome holds the analyst's rejection reason.
type RejectionOutcome struct {
	AnalystID string    `json:"analyst_id"`
	Reason    string    `json:"reason"`
	DecidedAt time.Time `json:"decided_at"`
}

// CorrectionRequest is set when the analyst returns the request to the
// document-collection phase: which documents to fix and what to do.
type CorrectionRequest struct {
	AnalystID    string    `json:"analyst_id"`
	DocumentIDs  []string  `json:"document_ids"`
	Instructions string    `json:"instructions"`
	RequestedAt  time.Time `json:"requested_at"`
}

// BankDetails is the applicant's routing triple for disbursement.
type BankDetails struct {
	BankCode string `json:"bank_code"`
	Branch   string `json:"branch"`
	Account  string `json:"account"`
}

// CreditRequest is the central entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//   - GSI2 (owner_id-index): owner_id
//
// Concurrency:
//   - Version backs the repository's optimistic per-record mutation; every
//     guard-then-set transition happens as one atomic write.
//
// Outcome fields are per-decision: each decision sets its own struct and
// clears the other two, so a returned-then-resubmitted request can end up
// approved with no stale correction payload attached.

type CreditRequest struct {
	ID     string `json:"id"`
	Number string `json:"number"`

	OwnerID string `json:"owner_id"`

	Amount                float64               `json:"amount"`
	Category              PurposeCategory       `json:"category"`
	Subcategory           string                `json:"subcategory"`
	Term                  PaymentTerm           `json:"term"`
	Method                PaymentMethod         `json:"method"`
	MonthlyIncome         float64               `json:"monthly_income"`
	CommittedIncome       float64               `json:"committed_income"`
	ProfessionalSituation ProfessionalSituation `json:"professional_situation"`
	Bank                  BankDetails           `json:"bank"`

	Status      RequestStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`

	Lock *AnalystLock `json:"lock,omitempty"`

	Approval   *ApprovalOutcome   `json:"approval,omitempty"`
	Rejection  *RejectionOutcome  `json:"rejection,omitempty"`
	Correction *CorrectionRequest `json:"correction,omitempty"`

	DisbursementID string     `json:"disbursement_id,omitempty"`
	DisbursedAt    *time.Time `json:"disbursed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// LockedBy reports whether the request is currently locked by the given analyst.
func (r CreditRequest) LockedBy(analystID string) bool {
	return r.Lock != nil && r.Lock.AnalystID == analystID
}
