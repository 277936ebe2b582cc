package request

import (
	"strings"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"
)

type BankDetailsRequest struct {
	BankCode string `json:"bank_code" binding:"required"`
	Branch   string `json:"branch" binding:"required"`
	Account  string `json:"account" binding:"required"`
}

// CreateCreditRequestRequest is the applicant-facing creation payload.
// Closed-set fields are carried as strings here; the use case rejects values
// outside the catalog.
type CreateCreditRequestRequest struct {
	OwnerID               string             `json:"owner_id" binding:"required"`
	Amount                float64            `json:"amount" binding:"required,gt=0"`
	Category              string             `json:"category" binding:"required"`
	Subcategory           string             `json:"subcategory" binding:"required"`
	Term                  string             `json:"term" binding:"required"`
	Method                string             `json:"method" binding:"required"`
	MonthlyIncome         float64            `json:"monthly_income" binding:"required,gt=0"`
	CommittedIncome       float64            `json:"committed_income" binding:"gte=0"`
	ProfessionalSituation string             `json:"professional_situation" binding:"required"`
	Bank                  BankDetailsRequest `json:"bank" binding:"required"`
	AsDraft               bool               `json:"as_draft"`
}

func (r CreateCreditRequestRequest) ToCommand() usecase.CreateCreditRequestCommand {
	return usecase.CreateCreditRequestCommand{
		OwnerID:               strings.TrimSpace(r.OwnerID),
		Amount:                r.Amount,
		Category:              entities.PurposeCategory(strings.TrimSpace(r.Category)),
		Subcategory:           strings.TrimSpace(r.Subcategory),
		Term:                  entities.PaymentTerm(strings.TrimSpace(r.Term)),
		Method:                entities.PaymentMethod(strings.TrimSpace(r.Method)),
		MonthlyIncome:         r.MonthlyIncome,
		CommittedIncome:       r.CommittedIncome,
		ProfessionalSituation: entities.ProfessionalSituation(strings.TrimSpace(r.ProfessionalSituation)),
		Bank: entities.BankDetails{
			BankCode: strings.TrimSpace(r.Bank.BankCode),
			Branch:   strings.TrimSpace(r.Bank.Branch),
			Account:  strings.TrimSpace(r.Bank.Account),
		},
		AsDraft: r.AsDraft,
	}
}

// OwnerActionRequest identifies the acting owner for submit/cancel routes.
type OwnerActionRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
}

func (r OwnerActionRequest) ResolveOwnerID() string {
	return strings.TrimSpace(r.OwnerID)
}
