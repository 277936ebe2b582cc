package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase/interfaces"
)

var (
	ErrRequestNotApproved          = errors.New("credit request not approved")
	ErrAlreadyDisbursed            = errors.New("credit request already disbursed")
	ErrDisbursementGatewayFailed   = errors.New("disbursement gateway failed")
	ErrGatewayNotConfigured        = errors.New("disbursement gateway not configured")
	ErrDisbursementGatewayRejected = errors.New("disbursement rejected by provider")
)

// IDisbursementUseCase performs the final step of the lifecycle: wiring the
// approved amount to the applicant and moving the request to efetivada.

type IDisbursementUseCase interface {
	Disburse(ctx context.Context, id string) (entities.CreditRequest, error)
}

type DisbursementUseCase struct {
	repo    interfaces.ICreditRequestRepository
	gateway interfaces.IDisbursementGateway
	now     func() time.Time
}

var _ IDisbursementUseCase = (*DisbursementUseCase)(nil)

func NewDisbursementUseCase(repo interfaces.ICreditRequestRepository, gateway interfaces.IDisbursementGateway) *DisbursementUseCase {
	return &DisbursementUseCase{repo: repo, gateway: gateway, now: time.Now}
}

// Disburse transfers the approved amount through the payment provider and
// stamps the request efetivada. The status guard runs again inside the
// mutation, so of two racing disbursements only one records the transition;
// the loser fails with ErrRequestNotApproved. The gateway call itself is not
// serialized: reconciliation against the provider's external_reference is
// what catches a duplicate transfer.
func (u *DisbursementUseCase) Disburse(ctx context.Context, id string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	log.Printf("[disbursement][usecase] start request_id=%s", id)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}
	if u.gateway == nil {
		log.Printf("[disbursement][usecase] gateway not configured request_id=%s", id)
		return entities.CreditRequest{}, ErrGatewayNotConfigured
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[disbursement][usecase] failed loading request request_id=%s err=%v", id, err)
		return entities.CreditRequest{}, err
	}
	if r.ID == "" {
		log.Printf("[disbursement][usecase] request not found request_id=%s", id)
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	if r.Status == entities.StatusEfetivada {
		return entities.CreditRequest{}, ErrAlreadyDisbursed
	}
	if r.Status != entities.StatusAprovado || r.Approval == nil {
		log.Printf("[disbursement][usecase] request not approved request_id=%s status=%s", id, r.Status)
		return entities.CreditRequest{}, ErrRequestNotApproved
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": r.Approval.ApprovedAmount,
		"external_reference": r.Number,
		"description":        fmt.Sprintf("Credit disbursement %s", r.Number),
		"bank": map[string]string{
			"bank_code": r.Bank.BankCode,
			"branch":    r.Bank.Branch,
			"account":   r.Bank.Account,
		},
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}

	log.Printf("[disbursement][usecase] calling gateway request_id=%s amount=%.2f", id, r.Approval.ApprovedAmount)
	providerID, providerStatus, _, err := u.gateway.CreateDisbursement(ctx, payload)
	if err != nil {
		log.Printf("[disbursement][usecase] gateway failed request_id=%s err=%v", id, err)
		return entities.CreditRequest{}, fmt.Errorf("%w: %v", ErrDisbursementGatewayFailed, err)
	}
	if providerStatus != "approved" && providerStatus != "accredited" {
		log.Printf("[disbursement][usecase] provider rejected request_id=%s provider_status=%s", id, providerStatus)
		return entities.CreditRequest{}, ErrDisbursementGatewayRejected
	}
	log.Printf("[disbursement][usecase] gateway success request_id=%s provider_id=%s provider_status=%s", id, providerID, providerStatus)

	updated, err := u.repo.Mutate(ctx, id, func(cur entities.CreditRequest) (entities.CreditRequest, error) {
		if cur.Status != entities.StatusAprovado {
			return entities.CreditRequest{}, ErrRequestNotApproved
		}
		now := u.now().UTC()
		cur.Status = entities.StatusEfetivada
		cur.DisbursementID = providerID
		cur.DisbursedAt = &now
		return cur, nil
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if updated.ID == "" {
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	log.Printf("[disbursement][usecase] success request_id=%s disbursement_id=%s", id, providerID)
	return updated, nil
}
