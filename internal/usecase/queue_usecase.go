package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/domain/scoring"
	"financeira_xpto/internal/usecase/interfaces"
)

// unknownApplicant is the placeholder shown when the directory cannot
// resolve an owner. A directory outage must never abort the queue.
const unknownApplicant = "Unknown"

// QueueFilter narrows the analyst queue. All fields are optional and
// AND-combined. Date bounds are inclusive whole days; Search matches the
// request number (substring, case-insensitive) or the owner's identifier
// document (substring).
type QueueFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
	Search    string
}

// QueueResult is one page of the ranked queue. Total counts every em_analise
// request system-wide; FilteredTotal counts what survived visibility and
// filters and is the caller's pagination denominator.
type QueueResult struct {
	Items         []entities.AnalysisQueueItem
	Total         int
	FilteredTotal int
	Page          int
	PageSize      int
}

type IQueueUseCase interface {
	List(ctx context.Context, analystID string, filter QueueFilter, page, pageSize int) (QueueResult, error)
}

// QueueUseCase builds the analyst work queue: a snapshot of em_analise
// requests the analyst may act on, ranked by the two-tier priority score.
// Items locked by another analyst are invisible, not merely disabled. The
// snapshot is not linearizable with concurrent locking; the race resolves at
// Acquire time.
type QueueUseCase struct {
	repo      interfaces.ICreditRequestRepository
	directory interfaces.IApplicantDirectory

	// Mirrors the lock lease used by AnalysisUseCase so that visibility and
	// acquirability agree: zero means locks never expire.
	lockTTL time.Duration

	now func() time.Time
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(repo interfaces.ICreditRequestRepository, directory interfaces.IApplicantDirectory, lockTTL time.Duration) *QueueUseCase {
	return &QueueUseCase{repo: repo, directory: directory, lockTTL: lockTTL, now: time.Now}
}

func (u *QueueUseCase) List(ctx context.Context, analystID string, filter QueueFilter, page, pageSize int) (QueueResult, error) {
	analystID = strings.TrimSpace(analystID)
	if analystID == "" {
		return QueueResult{}, ErrInvalidAnalyst
	}

	all, err := u.repo.ListByStatus(ctx, entities.StatusEmAnalise)
	if err != nil {
		return QueueResult{}, err
	}

	now := u.now().UTC()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	candidates := make([]entities.AnalysisQueueItem, 0, len(all))
	for _, r := range all {
		if !u.visibleTo(r, analystID, now) {
			continue
		}
		if !matchesFilter(r, filter) {
			continue
		}
		if search != "" && !u.matchesSearch(ctx, r, search) {
			continue
		}

		wait := scoring.WaitMinutes(r.SubmittedAt, now)
		candidates = append(candidates, entities.AnalysisQueueItem{
			Request:       r,
			WaitMinutes:   wait,
			PriorityScore: scoring.PriorityScore(wait, r.Amount),
			SLABand:       scoring.Band(wait),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].PriorityScore != candidates[j].PriorityScore {
			return candidates[i].PriorityScore > candidates[j].PriorityScore
		}
		return candidates[i].Request.SubmittedAt.Before(candidates[j].Request.SubmittedAt)
	})

	pageItems := paginate(candidates, page, pageSize)
	for i := range pageItems {
		u.enrich(ctx, &pageItems[i])
	}

	return QueueResult{
		Items:         pageItems,
		Total:         len(all),
		FilteredTotal: len(candidates),
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// visibleTo hides requests locked by someone else. Under a lock lease an
// expired lock no longer hides the request, matching what Acquire would do.
func (u *QueueUseCase) visibleTo(r entities.CreditRequest, analystID string, now time.Time) bool {
	if r.Lock == nil || r.Lock.AnalystID == analystID {
		return true
	}
	return u.lockTTL > 0 && now.Sub(r.Lock.LockedAt) > u.lockTTL
}

func matchesFilter(r entities.CreditRequest, f QueueFilter) bool {
	if f.StartDate != nil {
		dayStart := f.StartDate.Truncate(24 * time.Hour)
		if r.SubmittedAt.Before(dayStart) {
			return false
		}
	}
	if f.EndDate != nil {
		// Inclusive day bound: anything before the start of the next day.
		dayEnd := f.EndDate.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if !r.SubmittedAt.Before(dayEnd) {
			return false
		}
	}
	if f.MinAmount != nil && r.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && r.Amount > *f.MaxAmount {
		return false
	}
	return true
}

func (u *QueueUseCase) matchesSearch(ctx context.Context, r entities.CreditRequest, search string) bool {
	if strings.Contains(strings.ToLower(r.Number), search) {
		return true
	}
	doc, err := u.directory.GetIdentifierDocument(ctx, r.OwnerID)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(doc), search)
}

func (u *QueueUseCase) enrich(ctx context.Context, item *entities.AnalysisQueueItem) {
	name, err := u.directory.GetDisplayName(ctx, item.Request.OwnerID)
	if err != nil || name == "" {
		name = unknownApplicant
	}
	item.ApplicantName = name

	doc, err := u.directory.GetIdentifierDocument(ctx, item.Request.OwnerID)
	if err != nil {
		doc = ""
	}
	item.ApplicantDocument = doc
}

// paginate slices a 1-indexed page; out-of-range pages yield an empty page
// rather than an error.
func paginate(items []entities.AnalysisQueueItem, page, pageSize int) []entities.AnalysisQueueItem {
	if page < 1 || pageSize < 1 {
		return []entities.AnalysisQueueItem{}
	}
	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return []entities.AnalysisQueueItem{}
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
