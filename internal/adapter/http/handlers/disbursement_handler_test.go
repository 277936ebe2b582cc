package handlers

import (
	"net/http"
	"testing"
	"time"

	"financeira_xpto/internal/adapter/http/handlers/mocks"
	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDisbursementRouter(t *testing.T) (*gin.Engine, *mocks.MockIDisbursementUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIDisbursementUseCase(ctrl)
	h := NewDisbursementHandler(uc)

	r := gin.New()
	r.POST("/v1/credit-requests/:id/disburse", h.Disburse)
	return r, uc
}

func TestDisbursementHandler_Disburse(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrCreditRequestNotFound, http.StatusNotFound},
		{"not approved", usecase.ErrRequestNotApproved, http.StatusConflict},
		{"already disbursed", usecase.ErrAlreadyDisbursed, http.StatusConflict},
		{"gateway unavailable", usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{"provider rejected", usecase.ErrDisbursementGatewayRejected, http.StatusUnprocessableEntity},
		{"gateway failure", usecase.ErrDisbursementGatewayFailed, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newDisbursementRouter(t)
			uc.EXPECT().Disburse(gomock.Any(), "cr-1").Return(entities.CreditRequest{}, tc.err)

			if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/disburse", ""); w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newDisbursementRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Disburse(gomock.Any(), "cr-1").Return(entities.CreditRequest{
			ID: "cr-1", Status: entities.StatusEfetivada, DisbursementID: "mp-77", DisbursedAt: &now,
		}, nil)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/disburse", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
