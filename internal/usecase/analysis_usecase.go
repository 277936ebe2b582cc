package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/domain/finance"
	"financeira_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidAnalyst                 = errors.New("invalid analyst id")
	ErrRequestLocked                  = errors.New("credit request locked by another analyst")
	ErrNotLockHolder                  = errors.New("credit request not locked by this analyst")
	ErrApprovedAmountExceedsRequested = errors.New("approved amount exceeds requested amount")
	ErrInvalidApprovedAmount          = errors.New("invalid approved amount")
	ErrInvalidInterestRate            = errors.New("invalid interest rate")
	ErrInvalidTermMonths              = errors.New("invalid term in months")
	ErrInvalidRejectionReason         = errors.New("rejection reason must have between 20 and 1000 characters")
	ErrInvalidInstructions            = errors.New("correction instructions must have between 20 and 1000 characters")
	ErrNoDocumentsToFix               = errors.New("at least one document must be flagged for correction")
)

const (
	decisionTextMinLen = 20
	decisionTextMaxLen = 1000
)

// IAnalysisUseCase is the analyst side of the lifecycle: claiming a request
// from the queue and deciding it. Every decision requires em_analise status
// plus lock ownership, releases the lock, and happens as one atomic mutation.

type IAnalysisUseCase interface {
	Acquire(ctx context.Context, id, analystID string) (entities.CreditRequest, error)
	Approve(ctx context.Context, id, analystID string, approvedAmount, interestRate float64, termMonths int) (entities.CreditRequest, error)
	Reject(ctx context.Context, id, analystID, reason string) (entities.CreditRequest, error)
	ReturnForCorrection(ctx context.Context, id, analystID string, documentIDs []string, instructions string) (entities.CreditRequest, error)
}

type AnalysisUseCase struct {
	repo interfaces.ICreditRequestRepository

	// lockTTL > 0 lets Acquire treat a lock older than the lease as
	// releasable. Zero keeps the original behavior: a lock lives until a
	// decision releases it.
	lockTTL time.Duration

	now func() time.Time
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

func NewAnalysisUseCase(repo interfaces.ICreditRequestRepository, lockTTL time.Duration) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo, lockTTL: lockTTL, now: time.Now}
}

// lockOpen reports whether the lock does not stand in analystID's way:
// absent, held by the same analyst, or expired under the lease.
func (u *AnalysisUseCase) lockOpen(lock *entities.AnalystLock, analystID string, now time.Time) bool {
	if lock == nil || lock.AnalystID == analystID {
		return true
	}
	return u.lockTTL > 0 && now.Sub(lock.LockedAt) > u.lockTTL
}

// Acquire claims the request for the analyst. Re-acquiring one's own lock is
// idempotent and refreshes the timestamp. The check-and-set runs inside the
// repository's per-record mutation, so two analysts racing for the same
// unlocked request get exactly one grant.
func (u *AnalysisUseCase) Acquire(ctx context.Context, id, analystID string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	analystID = strings.TrimSpace(analystID)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}
	if analystID == "" {
		return entities.CreditRequest{}, ErrInvalidAnalyst
	}

	updated, err := u.repo.Mutate(ctx, id, func(r entities.CreditRequest) (entities.CreditRequest, error) {
		if r.Status != entities.StatusEmAnalise {
			return entities.CreditRequest{}, ErrInvalidTransition
		}
		now := u.now().UTC()
		if !u.lockOpen(r.Lock, analystID, now) {
			return entities.CreditRequest{}, ErrRequestLocked
		}
		r.Lock = &entities.AnalystLock{AnalystID: analystID, LockedAt: now}
		return r, nil
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if updated.ID == "" {
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	return updated, nil
}

func (u *AnalysisUseCase) Approve(ctx context.Context, id, analystID string, approvedAmount, interestRate float64, termMonths int) (entities.CreditRequest, error) {
	if approvedAmount <= 0 {
		return entities.CreditRequest{}, ErrInvalidApprovedAmount
	}
	if interestRate < 0 {
		return entities.CreditRequest{}, ErrInvalidInterestRate
	}
	if termMonths <= 0 {
		return entities.CreditRequest{}, ErrInvalidTermMonths
	}

	return u.decide(ctx, id, analystID, func(r entities.CreditRequest, now time.Time) (entities.CreditRequest, error) {
		if approvedAmount > r.Amount {
			return entities.CreditRequest{}, ErrApprovedAmountExceedsRequested
		}
		r.Status = entities.StatusAprovado
		r.Approval = &entities.ApprovalOutcome{
			AnalystID:        analystID,
			ApprovedAmount:   approvedAmount,
			InterestRate:     interestRate,
			TermMonths:       termMonths,
			InstallmentValue: finance.Installment(approvedAmount, interestRate, termMonths),
			DecidedAt:        now,
		}
		r.Rejection = nil
		r.Correction = nil
		return r, nil
	})
}

func (u *AnalysisUseCase) Reject(ctx context.Context, id, analystID, reason string) (entities.CreditRequest, error) {
	reason = strings.TrimSpace(reason)
	if n := utf8.RuneCountInString(reason); n < decisionTextMinLen || n > decisionTextMaxLen {
		return entities.CreditRequest{}, ErrInvalidRejectionReason
	}

	return u.decide(ctx, id, analystID, func(r entities.CreditRequest, now time.Time) (entities.CreditRequest, error) {
		r.Status = entities.StatusReprovado
		r.Rejection = &entities.RejectionOutcome{AnalystID: analystID, Reason: reason, DecidedAt: now}
		r.Approval = nil
		r.Correction = nil
		return r, nil
	})
}

// ReturnForCorrection sends the request back to the document-collection
// phase; the applicant must satisfy the mandatory categories again before it
// can re-enter analysis.
func (u *AnalysisUseCase) ReturnForCorrection(ctx context.Context, id, analystID string, documentIDs []string, instructions string) (entities.CreditRequest, error) {
	if len(documentIDs) == 0 {
		return entities.CreditRequest{}, ErrNoDocumentsToFix
	}
	instructions = strings.TrimSpace(instructions)
	if n := utf8.RuneCountInString(instructions); n < decisionTextMinLen || n > decisionTextMaxLen {
		return entities.CreditRequest{}, ErrInvalidInstructions
	}

	return u.decide(ctx, id, analystID, func(r entities.CreditRequest, now time.Time) (entities.CreditRequest, error) {
		r.Status = entities.StatusAguardandoDocumentacao
		r.Correction = &entities.CorrectionRequest{
			AnalystID:    analystID,
			DocumentIDs:  documentIDs,
			Instructions: instructions,
			RequestedAt:  now,
		}
		r.Approval = nil
		r.Rejection = nil
		return r, nil
	})
}

// decide applies the shared decision guards (em_analise + lock ownership),
// runs the decision body and releases the lock, all inside one mutation.
func (u *AnalysisUseCase) decide(
	ctx context.Context,
	id, analystID string,
	body func(r entities.CreditRequest, now time.Time) (entities.CreditRequest, error),
) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	analystID = strings.TrimSpace(analystID)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}
	if analystID == "" {
		return entities.CreditRequest{}, ErrInvalidAnalyst
	}

	updated, err := u.repo.Mutate(ctx, id, func(r entities.CreditRequest) (entities.CreditRequest, error) {
		if r.Status != entities.StatusEmAnalise {
			return entities.CreditRequest{}, ErrInvalidTransition
		}
		if !r.LockedBy(analystID) {
			return entities.CreditRequest{}, ErrNotLockHolder
		}
		next, err := body(r, u.now().UTC())
		if err != nil {
			return entities.CreditRequest{}, err
		}
		next.Lock = nil
		return next, nil
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if updated.ID == "" {
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	return updated, nil
}
