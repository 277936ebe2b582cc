package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "financeira_xpto/internal/adapter/http/dto/request"
	response "financeira_xpto/internal/adapter/http/dto/response"
	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/internal/usecase/interfaces"
	"financeira_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCreditRequestPayload = pkg.NewDomainErrorSimple("INVALID_CREDIT_REQUEST_INPUT", "Invalid credit request payload", http.StatusBadRequest)
)

// CreditRequestHandler handles the applicant-facing lifecycle routes plus the
// document collaborator's analysis-ready callback.

type CreditRequestHandler struct {
	usecase usecase.ICreditRequestUseCase
}

func NewCreditRequestHandler(uc usecase.ICreditRequestUseCase) *CreditRequestHandler {
	return &CreditRequestHandler{usecase: uc}
}

// CreateCreditRequest godoc
// @Summary  Create a credit request
// @Tags     credit-requests
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateCreditRequestRequest true "credit request"
// @Success  201 {object} response.CreditRequestResponse
// @Router   /credit-requests [post]
func (h *CreditRequestHandler) CreateCreditRequest(c *gin.Context) {
	var payload request.CreateCreditRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCreditRequestPayload.HTTPStatus, errInvalidCreditRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapCreditRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreditRequest(created))
}

// GetCreditRequest returns one request by id.
func (h *CreditRequestHandler) GetCreditRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCreditRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

// ListCreditRequests lists an owner's requests with optional status filter
// and pagination.
func (h *CreditRequestHandler) ListCreditRequests(c *gin.Context) {
	ownerID := strings.TrimSpace(c.Query("owner_id"))
	if ownerID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "owner_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var filter interfaces.OwnerListFilter
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		status := entities.RequestStatus(s)
		filter.Status = &status
	}
	if d, ok := parseDateQuery(c.Query("start_date")); ok {
		filter.StartDate = &d
	}
	if d, ok := parseDateQuery(c.Query("end_date")); ok {
		filter.EndDate = &d
	}

	page := parseIntQuery(c.Query("page"), 1)
	pageSize := parseIntQuery(c.Query("page_size"), 20)

	items, total, err := h.usecase.ListByOwner(c.Request.Context(), ownerID, filter, page, pageSize)
	if err != nil {
		appErr := mapCreditRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditRequestList(items, total, page, pageSize))
}

// SubmitCreditRequest moves an owner's draft to the document phase.
func (h *CreditRequestHandler) SubmitCreditRequest(c *gin.Context) {
	h.ownerAction(c, h.usecase.Submit)
}

// CancelCreditRequest cancels the owner's request while still allowed.
func (h *CreditRequestHandler) CancelCreditRequest(c *gin.Context) {
	h.ownerAction(c, h.usecase.Cancel)
}

func (h *CreditRequestHandler) ownerAction(
	c *gin.Context,
	action func(ctx context.Context, id, ownerID string) (entities.CreditRequest, error),
) {
	var payload request.OwnerActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	r, err := action(c.Request.Context(), c.Param("id"), payload.ResolveOwnerID())
	if err != nil {
		appErr := mapCreditRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

// MarkAnalysisReady is the document collaborator's callback once every
// mandatory document category is satisfied.
func (h *CreditRequestHandler) MarkAnalysisReady(c *gin.Context) {
	r, err := h.usecase.MarkAnalysisReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCreditRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func mapCreditRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCreditRequestID),
		errors.Is(err, usecase.ErrInvalidOwner),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidMonthlyIncome),
		errors.Is(err, usecase.ErrInvalidCommittedIncome),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidPaymentTerm),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidProfessionalSituation),
		errors.Is(err, usecase.ErrInvalidBankDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommittedIncomeExceedsIncome):
		return pkg.NewDomainErrorSimple("COMMITTED_INCOME_EXCEEDS_INCOME", "Committed income exceeds monthly income", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSubcategory):
		return pkg.NewDomainErrorSimple("INVALID_SUBCATEGORY", "Subcategory does not belong to category", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCreditRequestNotFound):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_NOT_FOUND", "Credit request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCannotCancel):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_NOT_CANCELLABLE", "Credit request can no longer be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status does not permit this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func parseIntQuery(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseDateQuery(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
