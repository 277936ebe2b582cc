package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "financeira_xpto/internal/adapter/http/dto/request"
	response "financeira_xpto/internal/adapter/http/dto/response"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAnalysisPayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)
)

// AnalysisHandler handles the analyst routes: the ranked queue, claiming a
// request and the three decisions.

type AnalysisHandler struct {
	analysis usecase.IAnalysisUseCase
	queue    usecase.IQueueUseCase
}

func NewAnalysisHandler(analysis usecase.IAnalysisUseCase, queue usecase.IQueueUseCase) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, queue: queue}
}

// ListQueue godoc
// @Summary  Ranked analyst queue
// @Tags     analysis
// @Produce  json
// @Param    analyst_id query string true "calling analyst"
// @Success  200 {object} response.QueueResponse
// @Router   /analysis/queue [get]
func (h *AnalysisHandler) ListQueue(c *gin.Context) {
	analystID := strings.TrimSpace(c.Query("analyst_id"))

	var filter usecase.QueueFilter
	if d, ok := parseDateQuery(c.Query("start_date")); ok {
		filter.StartDate = &d
	}
	if d, ok := parseDateQuery(c.Query("end_date")); ok {
		filter.EndDate = &d
	}
	if v, ok := parseFloatQuery(c.Query("min_amount")); ok {
		filter.MinAmount = &v
	}
	if v, ok := parseFloatQuery(c.Query("max_amount")); ok {
		filter.MaxAmount = &v
	}
	filter.Search = c.Query("search")

	page := parseIntQuery(c.Query("page"), 1)
	pageSize := parseIntQuery(c.Query("page_size"), 20)

	res, err := h.queue.List(c.Request.Context(), analystID, filter, page, pageSize)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQueueResult(res))
}

// AcquireLock claims the request for the analyst. Exactly one of two
// concurrent claimants succeeds; the loser receives 409.
func (h *AnalysisHandler) AcquireLock(c *gin.Context) {
	id := c.Param("id")
	var payload request.AnalystActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	r, err := h.analysis.Acquire(c.Request.Context(), id, payload.ResolveAnalystID())
	if err != nil {
		log.Printf("[analysis][handler] acquire failed request_id=%s analyst_id=%s err=%v", id, payload.AnalystID, err)
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func (h *AnalysisHandler) Approve(c *gin.Context) {
	id := c.Param("id")
	var payload request.ApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	r, err := h.analysis.Approve(c.Request.Context(), id, strings.TrimSpace(payload.AnalystID), payload.ApprovedAmount, payload.InterestRate, payload.TermMonths)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func (h *AnalysisHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	r, err := h.analysis.Reject(c.Request.Context(), id, strings.TrimSpace(payload.AnalystID), payload.Reason)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func (h *AnalysisHandler) ReturnForCorrection(c *gin.Context) {
	id := c.Param("id")
	var payload request.ReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	r, err := h.analysis.ReturnForCorrection(c.Request.Context(), id, strings.TrimSpace(payload.AnalystID), payload.DocumentIDs, payload.Instructions)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCreditRequestID),
		errors.Is(err, usecase.ErrInvalidAnalyst),
		errors.Is(err, usecase.ErrInvalidApprovedAmount),
		errors.Is(err, usecase.ErrInvalidInterestRate),
		errors.Is(err, usecase.ErrInvalidTermMonths),
		errors.Is(err, usecase.ErrInvalidRejectionReason),
		errors.Is(err, usecase.ErrInvalidInstructions),
		errors.Is(err, usecase.ErrNoDocumentsToFix):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovedAmountExceedsRequested):
		return pkg.NewDomainErrorSimple("APPROVED_AMOUNT_EXCEEDS_REQUESTED", "Approved amount exceeds requested amount", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCreditRequestNotFound):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_NOT_FOUND", "Credit request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestLocked):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_LOCKED", "Credit request locked by another analyst", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotLockHolder):
		return pkg.NewDomainErrorSimple("NOT_LOCK_HOLDER", "Credit request not locked by this analyst", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status does not permit this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func parseFloatQuery(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
