// Package memory provides an in-process implementation of the persistence
// ports, used by tests and local runs without DynamoDB. It keeps the same
// atomicity contract as the DynamoDB repository: mutations of one record
// serialize on that record alone.
package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase/interfaces"
)

// recordCell carries one record and the mutex that serializes its mutations.
// A per-record mutex keeps unrelated requests from ever contending.
type recordCell struct {
	mu  sync.Mutex
	req entities.CreditRequest
}

type CreditRequestMemoryRepository struct {
	mu    sync.RWMutex // guards the map itself, not record contents
	cells map[string]*recordCell
}

var _ interfaces.ICreditRequestRepository = (*CreditRequestMemoryRepository)(nil)

func NewCreditRequestMemoryRepository() *CreditRequestMemoryRepository {
	return &CreditRequestMemoryRepository{cells: make(map[string]*recordCell)}
}

func (r *CreditRequestMemoryRepository) Create(_ context.Context, req entities.CreditRequest) (entities.CreditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cells[req.ID]; exists {
		return entities.CreditRequest{}, nil
	}
	r.cells[req.ID] = &recordCell{req: cloneRequest(req)}
	return req, nil
}

func (r *CreditRequestMemoryRepository) GetByID(_ context.Context, id string) (entities.CreditRequest, error) {
	cell := r.cell(id)
	if cell == nil {
		return entities.CreditRequest{}, nil
	}
	cell.mu.Lock()
	defer cell.mu.Unlock()
	return cloneRequest(cell.req), nil
}

func (r *CreditRequestMemoryRepository) ListByOwner(_ context.Context, ownerID string, filter interfaces.OwnerListFilter, page, pageSize int) ([]entities.CreditRequest, int, error) {
	all := r.snapshot(func(req entities.CreditRequest) bool {
		if req.OwnerID != ownerID {
			return false
		}
		if filter.Status != nil && req.Status != *filter.Status {
			return false
		}
		if filter.StartDate != nil && req.SubmittedAt.Before(*filter.StartDate) {
			return false
		}
		if filter.EndDate != nil && req.SubmittedAt.After(*filter.EndDate) {
			return false
		}
		return true
	})

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if page < 1 || pageSize < 1 {
		return []entities.CreditRequest{}, total, nil
	}
	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []entities.CreditRequest{}, total, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *CreditRequestMemoryRepository) ListByStatus(_ context.Context, status entities.RequestStatus) ([]entities.CreditRequest, error) {
	return r.snapshot(func(req entities.CreditRequest) bool {
		return req.Status == status
	}), nil
}

func (r *CreditRequestMemoryRepository) Mutate(_ context.Context, id string, fn interfaces.MutateFunc) (entities.CreditRequest, error) {
	cell := r.cell(id)
	if cell == nil {
		return entities.CreditRequest{}, nil
	}

	cell.mu.Lock()
	defer cell.mu.Unlock()

	next, err := fn(cloneRequest(cell.req))
	if err != nil {
		return entities.CreditRequest{}, err
	}
	next.Version = cell.req.Version + 1
	next.UpdatedAt = time.Now().UTC()
	cell.req = cloneRequest(next)
	return next, nil
}

func (r *CreditRequestMemoryRepository) cell(id string) *recordCell {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cells[id]
}

func (r *CreditRequestMemoryRepository) snapshot(keep func(entities.CreditRequest) bool) []entities.CreditRequest {
	r.mu.RLock()
	cells := make([]*recordCell, 0, len(r.cells))
	for _, c := range r.cells {
		cells = append(cells, c)
	}
	r.mu.RUnlock()

	out := make([]entities.CreditRequest, 0, len(cells))
	for _, c := range cells {
		c.mu.Lock()
		req := cloneRequest(c.req)
		c.mu.Unlock()
		if keep(req) {
			out = append(out, req)
		}
	}
	return out
}

// cloneRequest deep-copies the pointer-typed outcome fields so callers can
// never alias stored state.
func cloneRequest(r entities.CreditRequest) entities.CreditRequest {
	if r.Lock != nil {
		l := *r.Lock
		r.Lock = &l
	}
	if r.Approval != nil {
		a := *r.Approval
		r.Approval = &a
	}
	if r.Rejection != nil {
		rej := *r.Rejection
		r.Rejection = &rej
	}
	if r.Correction != nil {
		c := *r.Correction
		c.DocumentIDs = append([]string(nil), c.DocumentIDs...)
		r.Correction = &c
	}
	if r.DisbursedAt != nil {
		t := *r.DisbursedAt
		r.DisbursedAt = &t
	}
	return r
}

// RequestNumberMemorySequence is the in-process counter counterpart of the
// DynamoDB sequence.
type RequestNumberMemorySequence struct {
	current atomic.Int64
}

var _ interfaces.IRequestNumberSequence = (*RequestNumberMemorySequence)(nil)

func NewRequestNumberMemorySequence() *RequestNumberMemorySequence {
	return &RequestNumberMemorySequence{}
}

func (s *RequestNumberMemorySequence) Next(context.Context) (int64, error) {
	return s.current.Add(1), nil
}
