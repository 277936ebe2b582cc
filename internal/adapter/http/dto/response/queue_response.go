package response

import (
	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"
)

type QueueItemResponse struct {
	Request           CreditRequestResponse `json:"request"`
	ApplicantName     string                `json:"applicant_name"`
	ApplicantDocument string                `json:"applicant_document"`
	WaitMinutes       int64                 `json:"wait_minutes"`
	PriorityScore     float64               `json:"priority_score"`
	SLABand           string                `json:"sla_band"`
}

// QueueResponse carries both counters the queue computes: total is the
// system-wide em_analise count, filtered_total the caller's pagination
// denominator.
type QueueResponse struct {
	Items         []QueueItemResponse `json:"items"`
	Total         int                 `json:"total"`
	FilteredTotal int                 `json:"filtered_total"`
	Page          int                 `json:"page"`
	PageSize      int                 `json:"page_size"`
}

func fromQueueItem(it entities.AnalysisQueueItem) QueueItemResponse {
	return QueueItemResponse{
		Request:           FromCreditRequest(it.Request),
		ApplicantName:     it.ApplicantName,
		ApplicantDocument: it.ApplicantDocument,
		WaitMinutes:       it.WaitMinutes,
		PriorityScore:     it.PriorityScore,
		SLABand:           string(it.SLABand),
	}
}

func FromQueueResult(res usecase.QueueResult) QueueResponse {
	items := make([]QueueItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, fromQueueItem(it))
	}
	return QueueResponse{
		Items:         items,
		Total:         res.Total,
		FilteredTotal: res.FilteredTotal,
		Page:          res.Page,
		PageSize:      res.PageSize,
	}
}
