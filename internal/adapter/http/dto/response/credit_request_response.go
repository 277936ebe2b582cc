package response

import (
	"time"

	"financeira_xpto/internal/domain/entities"
)

type BankDetailsResponse struct {
	BankCode string `json:"bank_code"`
	Branch   string `json:"branch"`
	Account  string `json:"account"`
}

type LockResponse struct {
	AnalystID string    `json:"analyst_id"`
	LockedAt  time.Time `json:"locked_at"`
}

type ApprovalResponse struct {
	AnalystID        string    `json:"analyst_id"`
	ApprovedAmount   float64   `json:"approved_amount"`
	InterestRate     float64   `json:"interest_rate"`
	TermMonths       int       `json:"term_months"`
	InstallmentValue float64   `json:"installment_value"`
	DecidedAt        time.Time `json:"decided_at"`
}

type RejectionResponse struct {
	AnalystID string    `json:"analyst_id"`
	Reason    string    `json:"reason"`
	DecidedAt time.Time `json:"decided_at"`
}

type CorrectionResponse struct {
	AnalystID    string    `json:"analyst_id"`
	DocumentIDs  []string  `json:"document_ids"`
	Instructions string    `json:"instructions"`
	RequestedAt  time.Time `json:"requested_at"`
}

type CreditRequestResponse struct {
	ID                    string              `json:"id"`
	Number                string              `json:"number"`
	OwnerID               string              `json:"owner_id"`
	Amount                float64             `json:"amount"`
	Category              string              `json:"category"`
	Subcategory           string              `json:"subcategory"`
	Term                  string              `json:"term"`
	Method                string              `json:"method"`
	MonthlyIncome         float64             `json:"monthly_income"`
	CommittedIncome       float64             `json:"committed_income"`
	ProfessionalSituation string              `json:"professional_situation"`
	Bank                  BankDetailsResponse `json:"bank"`
	Status                string              `json:"status"`
	SubmittedAt           time.Time           `json:"submitted_at"`
	Lock                  *LockResponse       `json:"lock,omitempty"`
	Approval              *ApprovalResponse   `json:"approval,omitempty"`
	Rejection             *RejectionResponse  `json:"rejection,omitempty"`
	Correction            *CorrectionResponse `json:"correction,omitempty"`
	DisbursementID        string              `json:"disbursement_id,omitempty"`
	DisbursedAt           *time.Time          `json:"disbursed_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

func FromCreditRequest(r entities.CreditRequest) CreditRequestResponse {
	resp := CreditRequestResponse{
		ID:                    r.ID,
		Number:                r.Number,
		OwnerID:               r.OwnerID,
		Amount:                r.Amount,
		Category:              string(r.Category),
		Subcategory:           r.Subcategory,
		Term:                  string(r.Term),
		Method:                string(r.Method),
		MonthlyIncome:         r.MonthlyIncome,
		CommittedIncome:       r.CommittedIncome,
		ProfessionalSituation: string(r.ProfessionalSituation),
		Bank: BankDetailsResponse{
			BankCode: r.Bank.BankCode,
			Branch:   r.Bank.Branch,
			Account:  r.Bank.Account,
		},
		Status:         string(r.Status),
		SubmittedAt:    r.SubmittedAt,
		DisbursementID: r.DisbursementID,
		DisbursedAt:    r.DisbursedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Lock != nil {
		resp.Lock = &LockResponse{AnalystID: r.Lock.AnalystID, LockedAt: r.Lock.LockedAt}
	}
	if r.Approval != nil {
		resp.Approval = &ApprovalResponse{
			AnalystID:        r.Approval.AnalystID,
			ApprovedAmount:   r.Approval.ApprovedAmount,
			InterestRate:     r.Approval.InterestRate,
			TermMonths:       r.Approval.TermMonths,
			InstallmentValue: r.Approval.InstallmentValue,
			DecidedAt:        r.Approval.DecidedAt,
		}
	}
	if r.Rejection != nil {
		resp.Rejection = &RejectionResponse{
			AnalystID: r.Rejection.AnalystID,
			Reason:    r.Rejection.Reason,
			DecidedAt: r.Rejection.DecidedAt,
		}
	}
	if r.Correction != nil {
		resp.Correction = &CorrectionResponse{
			AnalystID:    r.Correction.AnalystID,
			DocumentIDs:  r.Correction.DocumentIDs,
			Instructions: r.Correction.Instructions,
			RequestedAt:  r.Correction.RequestedAt,
		}
	}
	return resp
}

// CreditRequestListResponse is a page of an owner's requests.
type CreditRequestListResponse struct {
	Items    []CreditRequestResponse `json:"items"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

func FromCreditRequestList(items []entities.CreditRequest, total, page, pageSize int) CreditRequestListResponse {
	out := make([]CreditRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromCreditRequest(r))
	}
	return CreditRequestListResponse{Items: out, Total: total, Page: page, PageSize: pageSize}
}
