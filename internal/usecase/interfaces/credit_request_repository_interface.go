package interfaces

import (
	"context"
	"time"

	"financeira_xpto/internal/domain/entities"
)

// MutateFunc receives the current record and returns the next one. Returning
// an error aborts the mutation with no write.
type MutateFunc func(entities.CreditRequest) (entities.CreditRequest, error)

// OwnerListFilter narrows an owner's request listing.
type OwnerListFilter struct {
	Status    *entities.RequestStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// ICreditRequestRepository abstracts persistence for CreditRequest.
//
// Conventions (shared by the DynamoDB and in-memory implementations):
//   - A missing record is the zero entity with a nil error; use cases map it
//     to their not-found sentinel.
//   - Mutate applies fn to the current record and persists the result as one
//     atomic unit per id; concurrent mutations of the same id serialize,
//     different ids never contend. Every guard-then-set transition in the
//     lifecycle runs through it.
//   - ListByStatus is a snapshot read; it is not linearizable with concurrent
//     mutations, which the queue tolerates by re-checking at lock time.

type ICreditRequestRepository interface {
	Create(ctx context.Context, r entities.CreditRequest) (entities.CreditRequest, error)
	GetByID(ctx context.Context, id string) (entities.CreditRequest, error)
	ListByOwner(ctx context.Context, ownerID string, filter OwnerListFilter, page, pageSize int) ([]entities.CreditRequest, int, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.CreditRequest, error)
	Mutate(ctx context.Context, id string, fn MutateFunc) (entities.CreditRequest, error)
}
