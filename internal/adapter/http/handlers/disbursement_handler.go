package handlers

import (
	"errors"
	"net/http"

	response "financeira_xpto/internal/adapter/http/dto/response"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DisbursementHandler exposes the final lifecycle step: paying out an
// approved request.

type DisbursementHandler struct {
	usecase usecase.IDisbursementUseCase
}

func NewDisbursementHandler(uc usecase.IDisbursementUseCase) *DisbursementHandler {
	return &DisbursementHandler{usecase: uc}
}

// Disburse godoc
// @Summary  Disburse an approved credit request
// @Tags     disbursements
// @Produce  json
// @Param    id path string true "credit request id"
// @Success  200 {object} response.CreditRequestResponse
// @Router   /credit-requests/{id}/disburse [post]
func (h *DisbursementHandler) Disburse(c *gin.Context) {
	r, err := h.usecase.Disburse(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDisbursementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditRequest(r))
}

func mapDisbursementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCreditRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCreditRequestNotFound):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_NOT_FOUND", "Credit request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotApproved):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_NOT_APPROVED", "Credit request is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyDisbursed):
		return pkg.NewDomainErrorSimple("CREDIT_REQUEST_ALREADY_DISBURSED", "Credit request already disbursed", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("DISBURSEMENT_GATEWAY_UNAVAILABLE", "Disbursement gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDisbursementGatewayRejected):
		return pkg.NewDomainErrorSimple("DISBURSEMENT_REJECTED", "Disbursement rejected by payment provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDisbursementGatewayFailed):
		return pkg.NewDomainError("DISBURSEMENT_GATEWAY_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
