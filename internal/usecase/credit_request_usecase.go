package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCreditRequestNotFound        = errors.New("credit request not found")
	ErrInvalidCreditRequestID       = errors.New("invalid credit request id")
	ErrInvalidOwner                 = errors.New("invalid owner id")
	ErrInvalidAmount                = errors.New("invalid requested amount")
	ErrInvalidMonthlyIncome         = errors.New("invalid monthly income")
	ErrInvalidCommittedIncome       = errors.New("invalid committed income")
	ErrCommittedIncomeExceedsIncome = errors.New("committed income exceeds monthly income")
	ErrInvalidCategory              = errors.New("invalid purpose category")
	ErrInvalidSubcategory           = errors.New("subcategory does not belong to category")
	ErrInvalidPaymentTerm           = errors.New("invalid payment term")
	ErrInvalidPaymentMethod         = errors.New("invalid payment method")
	ErrInvalidProfessionalSituation = errors.New("invalid professional situation")
	ErrInvalidBankDetails           = errors.New("invalid bank details")
	ErrInvalidTransition            = errors.New("status does not permit this action")
	ErrCannotCancel                 = errors.New("credit request can no longer be cancelled")
)

// CreateCreditRequestCommand carries everything the applicant supplies at
// creation time. AsDraft keeps the request in rascunho until the owner
// submits it to the document-collection phase.
type CreateCreditRequestCommand struct {
	OwnerID               string
	Amount                float64
	Category              entities.PurposeCategory
	Subcategory           string
	Term                  entities.PaymentTerm
	Method                entities.PaymentMethod
	MonthlyIncome         float64
	CommittedIncome       float64
	ProfessionalSituation entities.ProfessionalSituation
	Bank                  entities.BankDetails
	AsDraft               bool
}

// ICreditRequestUseCase exposes the applicant-facing lifecycle: create,
// submit a draft, the document collaborator's analysis-ready signal, cancel,
// and read access.

type ICreditRequestUseCase interface {
	Create(ctx context.Context, cmd CreateCreditRequestCommand) (entities.CreditRequest, error)
	Submit(ctx context.Context, id, ownerID string) (entities.CreditRequest, error)
	MarkAnalysisReady(ctx context.Context, id string) (entities.CreditRequest, error)
	Cancel(ctx context.Context, id, requesterID string) (entities.CreditRequest, error)
	GetByID(ctx context.Context, id string) (entities.CreditRequest, error)
	ListByOwner(ctx context.Context, ownerID string, filter interfaces.OwnerListFilter, page, pageSize int) ([]entities.CreditRequest, int, error)
}

type CreditRequestUseCase struct {
	repo interfaces.ICreditRequestRepository
	seq  interfaces.IRequestNumberSequence
	now  func() time.Time
}

var _ ICreditRequestUseCase = (*CreditRequestUseCase)(nil)

func NewCreditRequestUseCase(repo interfaces.ICreditRequestRepository, seq interfaces.IRequestNumberSequence) *CreditRequestUseCase {
	return &CreditRequestUseCase{repo: repo, seq: seq, now: time.Now}
}

func (u *CreditRequestUseCase) Create(ctx context.Context, cmd CreateCreditRequestCommand) (entities.CreditRequest, error) {
	cmd.OwnerID = strings.TrimSpace(cmd.OwnerID)
	cmd.Subcategory = strings.TrimSpace(cmd.Subcategory)

	if err := validateCreateCommand(cmd); err != nil {
		return entities.CreditRequest{}, err
	}

	n, err := u.seq.Next(ctx)
	if err != nil {
		return entities.CreditRequest{}, err
	}

	now := u.now().UTC()
	status := entities.StatusAguardandoDocumentacao
	if cmd.AsDraft {
		status = entities.StatusRascunho
	}

	r := entities.CreditRequest{
		ID:                    uuid.NewString(),
		Number:                FormatRequestNumber(now, n),
		OwnerID:               cmd.OwnerID,
		Amount:                cmd.Amount,
		Category:              cmd.Category,
		Subcategory:           cmd.Subcategory,
		Term:                  cmd.Term,
		Method:                cmd.Method,
		MonthlyIncome:         cmd.MonthlyIncome,
		CommittedIncome:       cmd.CommittedIncome,
		ProfessionalSituation: cmd.ProfessionalSituation,
		Bank:                  cmd.Bank,
		Status:                status,
		SubmittedAt:           now,
		CreatedAt:             now,
		UpdatedAt:             now,
		Version:               1,
	}
	return u.repo.Create(ctx, r)
}

func validateCreateCommand(cmd CreateCreditRequestCommand) error {
	switch {
	case cmd.OwnerID == "":
		return ErrInvalidOwner
	case cmd.Amount <= 0:
		return ErrInvalidAmount
	case cmd.MonthlyIncome <= 0:
		return ErrInvalidMonthlyIncome
	case cmd.CommittedIncome < 0:
		return ErrInvalidCommittedIncome
	case cmd.CommittedIncome > cmd.MonthlyIncome:
		return ErrCommittedIncomeExceedsIncome
	case !cmd.Category.Valid():
		return ErrInvalidCategory
	case !entities.SubcategoryBelongs(cmd.Category, cmd.Subcategory):
		return ErrInvalidSubcategory
	case !cmd.Term.Valid():
		return ErrInvalidPaymentTerm
	case !cmd.Method.Valid():
		return ErrInvalidPaymentMethod
	case !cmd.ProfessionalSituation.Valid():
		return ErrInvalidProfessionalSituation
	case !cmd.Bank.Valid():
		return ErrInvalidBankDetails
	}
	return nil
}

// FormatRequestNumber builds the human-readable number CR-YYYYMMDD-NNNNN.
// The suffix is the raw monotonic counter zero-padded to five digits; it
// widens past 99999 instead of colliding.
func FormatRequestNumber(createdAt time.Time, seq int64) string {
	return fmt.Sprintf("CR-%s-%05d", createdAt.Format("20060102"), seq)
}

// Submit moves an owner's draft into the document-collection phase. A wrong
// owner is reported as not-found so non-owners cannot probe for existence.
func (u *CreditRequestUseCase) Submit(ctx context.Context, id, ownerID string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}
	if ownerID == "" {
		return entities.CreditRequest{}, ErrInvalidOwner
	}

	return u.mutateExisting(ctx, id, func(r entities.CreditRequest) (entities.CreditRequest, error) {
		if r.OwnerID != ownerID {
			return entities.CreditRequest{}, ErrCreditRequestNotFound
		}
		if r.Status != entities.StatusRascunho {
			return entities.CreditRequest{}, ErrInvalidTransition
		}
		r.Status = entities.StatusAguardandoDocumentacao
		r.SubmittedAt = u.now().UTC()
		return r, nil
	})
}

// MarkAnalysisReady is the document collaborator's signal that every
// mandatory document category is satisfied.
func (u *CreditRequestUseCase) MarkAnalysisReady(ctx context.Context, id string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}

	return u.mutateExisting(ctx, id, func(r entities.CreditRequest) (entities.CreditRequest, error) {
		if r.Status != entities.StatusAguardandoDocumentacao {
			return entities.CreditRequest{}, ErrInvalidTransition
		}
		r.Status = entities.StatusEmAnalise
		return r, nil
	})
}

// Cancel is only available to the owner and only before a terminal outcome.
// Missing id and wrong owner are deliberately indistinguishable.
func (u *CreditRequestUseCase) Cancel(ctx context.Context, id, requesterID string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	requesterID = strings.TrimSpace(requesterID)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}
	if requesterID == "" {
		return entities.CreditRequest{}, ErrInvalidOwner
	}

	return u.mutateExisting(ctx, id, func(r entities.CreditRequest) (entities.CreditRequest, error) {
		if r.OwnerID != requesterID {
			return entities.CreditRequest{}, ErrCreditRequestNotFound
		}
		if !r.Status.Cancellable() {
			return entities.CreditRequest{}, ErrCannotCancel
		}
		r.Status = entities.StatusCancelado
		r.Lock = nil
		return r, nil
	})
}

func (u *CreditRequestUseCase) GetByID(ctx context.Context, id string) (entities.CreditRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CreditRequest{}, ErrInvalidCreditRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if r.ID == "" {
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	return r, nil
}

func (u *CreditRequestUseCase) ListByOwner(ctx context.Context, ownerID string, filter interfaces.OwnerListFilter, page, pageSize int) ([]entities.CreditRequest, int, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, 0, ErrInvalidOwner
	}
	return u.repo.ListByOwner(ctx, ownerID, filter, page, pageSize)
}

// mutateExisting wraps repo.Mutate with the shared not-found mapping.
func (u *CreditRequestUseCase) mutateExisting(ctx context.Context, id string, fn interfaces.MutateFunc) (entities.CreditRequest, error) {
	updated, err := u.repo.Mutate(ctx, id, fn)
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if updated.ID == "" {
		return entities.CreditRequest{}, ErrCreditRequestNotFound
	}
	return updated, nil
}
