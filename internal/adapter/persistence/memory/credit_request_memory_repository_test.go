package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/internal/usecase/interfaces"
)

func seedRequest(id, owner string, status entities.RequestStatus) entities.CreditRequest {
	now := time.Now().UTC()
	return entities.CreditRequest{
		ID:          id,
		Number:      "CR-20260310-" + id,
		OwnerID:     owner,
		Amount:      1000,
		Status:      status,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, seedRequest("cr-1", "owner-1", entities.StatusRascunho)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "cr-1")
	if err != nil || got.ID != "cr-1" {
		t.Fatalf("unexpected get: %+v %v", got, err)
	}

	missing, err := repo.GetByID(ctx, "ghost")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero entity for missing id, got %+v %v", missing, err)
	}
}

func TestMemoryRepository_MutateBumpsVersion(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()
	_, _ = repo.Create(ctx, seedRequest("cr-1", "owner-1", entities.StatusAguardandoDocumentacao))

	updated, err := repo.Mutate(ctx, "cr-1", func(r entities.CreditRequest) (entities.CreditRequest, error) {
		r.Status = entities.StatusEmAnalise
		return r, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.StatusEmAnalise || updated.Version != 2 {
		t.Fatalf("unexpected mutation result: %+v", updated)
	}
}

func TestMemoryRepository_MutateErrorLeavesRecordUntouched(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()
	_, _ = repo.Create(ctx, seedRequest("cr-1", "owner-1", entities.StatusEmAnalise))

	boom := errors.New("guard failed")
	_, err := repo.Mutate(ctx, "cr-1", func(r entities.CreditRequest) (entities.CreditRequest, error) {
		r.Status = entities.StatusAprovado
		return r, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected guard error, got %v", err)
	}

	got, _ := repo.GetByID(ctx, "cr-1")
	if got.Status != entities.StatusEmAnalise || got.Version != 1 {
		t.Fatalf("record changed despite error: %+v", got)
	}
}

func TestMemoryRepository_CloneProtectsStoredState(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()

	seed := seedRequest("cr-1", "owner-1", entities.StatusEmAnalise)
	seed.Lock = &entities.AnalystLock{AnalystID: "ana-1", LockedAt: time.Now().UTC()}
	_, _ = repo.Create(ctx, seed)

	got, _ := repo.GetByID(ctx, "cr-1")
	got.Lock.AnalystID = "tampered"

	again, _ := repo.GetByID(ctx, "cr-1")
	if again.Lock.AnalystID != "ana-1" {
		t.Fatalf("stored state was aliased: %+v", again.Lock)
	}
}

// Two analysts race for the same unlocked request. Exactly one Acquire may
// succeed; the loser must see the lock-conflict error.
func TestMemoryRepository_ConcurrentAcquire(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()
	_, _ = repo.Create(ctx, seedRequest("cr-1", "owner-1", entities.StatusEmAnalise))

	uc := usecase.NewAnalysisUseCase(repo, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, analyst := range []string{"ana-1", "ana-2"} {
		wg.Add(1)
		go func(i int, analyst string) {
			defer wg.Done()
			_, errs[i] = uc.Acquire(ctx, "cr-1", analyst)
		}(i, analyst)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, usecase.ErrRequestLocked):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got wins=%d conflicts=%d", wins, conflicts)
	}

	got, _ := repo.GetByID(ctx, "cr-1")
	if got.Lock == nil {
		t.Fatalf("expected a lock holder after the race")
	}
}

func TestMemoryRepository_ListByOwner(t *testing.T) {
	repo := NewCreditRequestMemoryRepository()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, status := range []entities.RequestStatus{entities.StatusRascunho, entities.StatusEmAnalise, entities.StatusAprovado} {
		r := seedRequest("cr-"+string(rune('a'+i)), "owner-1", status)
		r.CreatedAt = base.AddDate(0, 0, i)
		r.SubmittedAt = r.CreatedAt
		_, _ = repo.Create(ctx, r)
	}
	_, _ = repo.Create(ctx, seedRequest("cr-x", "owner-2", entities.StatusRascunho))

	t.Run("owner scoping", func(t *testing.T) {
		items, total, err := repo.ListByOwner(ctx, "owner-1", interfaces.OwnerListFilter{}, 1, 10)
		if err != nil || total != 3 || len(items) != 3 {
			t.Fatalf("unexpected listing: %d/%d %v", len(items), total, err)
		}
		// Newest first.
		if !items[0].CreatedAt.After(items[1].CreatedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	})

	t.Run("status filter", func(t *testing.T) {
		status := entities.StatusAprovado
		items, total, err := repo.ListByOwner(ctx, "owner-1", interfaces.OwnerListFilter{Status: &status}, 1, 10)
		if err != nil || total != 1 || items[0].Status != entities.StatusAprovado {
			t.Fatalf("unexpected filtered listing: %+v %d %v", items, total, err)
		}
	})

	t.Run("pagination keeps full total", func(t *testing.T) {
		items, total, err := repo.ListByOwner(ctx, "owner-1", interfaces.OwnerListFilter{}, 2, 2)
		if err != nil || total != 3 || len(items) != 1 {
			t.Fatalf("unexpected page: %d/%d %v", len(items), total, err)
		}
	})
}

func TestMemorySequence_Next(t *testing.T) {
	seq := NewRequestNumberMemorySequence()
	ctx := context.Background()

	var wg sync.WaitGroup
	seen := make(chan int64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Next(ctx)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for n := range seen {
		if unique[n] {
			t.Fatalf("duplicate sequence value %d", n)
		}
		unique[n] = true
	}
	if len(unique) != 100 {
		t.Fatalf("expected 100 unique values, got %d", len(unique))
	}
}
