package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"financeira_xpto/internal/adapter/http/handlers/mocks"
	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createPayload = `{
	"owner_id": "owner-1",
	"amount": 25000,
	"category": "veiculo",
	"subcategory": "carro_usado",
	"term": "36x",
	"method": "pix",
	"monthly_income": 8000,
	"committed_income": 1500,
	"professional_situation": "clt",
	"bank": {"bank_code": "341", "branch": "1234", "account": "56789-0"}
}`

func newCreditRouter(t *testing.T) (*gin.Engine, *mocks.MockICreditRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockICreditRequestUseCase(ctrl)
	h := NewCreditRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/credit-requests", h.CreateCreditRequest)
	r.GET("/v1/credit-requests", h.ListCreditRequests)
	r.GET("/v1/credit-requests/:id", h.GetCreditRequest)
	r.POST("/v1/credit-requests/:id/submit", h.SubmitCreditRequest)
	r.POST("/v1/credit-requests/:id/cancel", h.CancelCreditRequest)
	r.POST("/v1/credit-requests/:id/analysis-ready", h.MarkAnalysisReady)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreditRequestHandler_CreateCreditRequest(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCreditRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/credit-requests", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		r, _ := newCreditRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/credit-requests", `{"owner_id":"owner-1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("semantic error maps to 422", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditRequest{}, usecase.ErrCommittedIncomeExceedsIncome)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests", createPayload); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateCreditRequestCommand) (entities.CreditRequest, error) {
				if cmd.OwnerID != "owner-1" || cmd.Category != entities.CategoryVeiculo {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return entities.CreditRequest{
					ID: "cr-1", Number: "CR-20260310-00001", OwnerID: cmd.OwnerID,
					Status: entities.StatusAguardandoDocumentacao, CreatedAt: now, UpdatedAt: now,
				}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/credit-requests", createPayload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["number"] != "CR-20260310-00001" || body["status"] != "aguardando_documentacao" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestCreditRequestHandler_GetCreditRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.CreditRequest{}, usecase.ErrCreditRequestNotFound)

		if w := doJSON(r, http.MethodGet, "/v1/credit-requests/ghost", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.CreditRequest{ID: "cr-1"}, nil)

		if w := doJSON(r, http.MethodGet, "/v1/credit-requests/cr-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCreditRequestHandler_ListCreditRequests(t *testing.T) {
	t.Run("owner id required", func(t *testing.T) {
		r, _ := newCreditRouter(t)
		if w := doJSON(r, http.MethodGet, "/v1/credit-requests", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards filters and pagination", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().ListByOwner(gomock.Any(), "owner-1", gomock.Any(), 2, 5).DoAndReturn(
			func(_ context.Context, _ string, filter interfaces.OwnerListFilter, _, _ int) ([]entities.CreditRequest, int, error) {
				if filter.Status == nil || *filter.Status != entities.StatusEmAnalise {
					t.Fatalf("expected status filter, got %+v", filter)
				}
				if filter.StartDate == nil {
					t.Fatalf("expected start date filter")
				}
				return []entities.CreditRequest{{ID: "cr-1"}}, 7, nil
			},
		)

		w := doJSON(r, http.MethodGet, "/v1/credit-requests?owner_id=owner-1&status=em_analise&start_date=2026-03-01&page=2&page_size=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 7.0 {
			t.Fatalf("unexpected total %v", body["total"])
		}
	})
}

func TestCreditRequestHandler_OwnerActions(t *testing.T) {
	t.Run("submit requires owner payload", func(t *testing.T) {
		r, _ := newCreditRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/submit", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "cr-1", "owner-1").Return(entities.CreditRequest{ID: "cr-1", Status: entities.StatusAguardandoDocumentacao}, nil)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/submit", `{"owner_id":"owner-1"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel terminal request maps to 409", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "cr-1", "owner-1").Return(entities.CreditRequest{}, usecase.ErrCannotCancel)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/cancel", `{"owner_id":"owner-1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel by non-owner maps to 404", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "cr-1", "intruder").Return(entities.CreditRequest{}, usecase.ErrCreditRequestNotFound)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/cancel", `{"owner_id":"intruder"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCreditRequestHandler_MarkAnalysisReady(t *testing.T) {
	t.Run("wrong phase maps to 409", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().MarkAnalysisReady(gomock.Any(), "cr-1").Return(entities.CreditRequest{}, usecase.ErrInvalidTransition)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/analysis-ready", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().MarkAnalysisReady(gomock.Any(), "cr-1").Return(entities.CreditRequest{}, errors.New("db down"))

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/analysis-ready", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCreditRouter(t)
		uc.EXPECT().MarkAnalysisReady(gomock.Any(), "cr-1").Return(entities.CreditRequest{ID: "cr-1", Status: entities.StatusEmAnalise}, nil)

		if w := doJSON(r, http.MethodPost, "/v1/credit-requests/cr-1/analysis-ready", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
