package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase/interfaces"
	mock_interfaces "financeira_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedSeed() entities.CreditRequest {
	return entities.CreditRequest{
		ID:      "cr-1",
		Number:  "CR-20260310-00042",
		OwnerID: "owner-1",
		Amount:  30000,
		Bank:    entities.BankDetails{BankCode: "341", Branch: "1234", Account: "56789-0"},
		Status:  entities.StatusAprovado,
		Approval: &entities.ApprovalOutcome{
			AnalystID:      "ana-1",
			ApprovedAmount: 25000,
			InterestRate:   2,
			TermMonths:     24,
			DecidedAt:      fixedNow,
		},
	}
}

func TestDisbursementUseCase_Disburse(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewDisbursementUseCase(nil, nil)
		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.CreditRequest{}, nil)

		if _, err := uc.Disburse(context.Background(), "ghost"); !errors.Is(err, ErrCreditRequestNotFound) {
			t.Fatalf("expected ErrCreditRequestNotFound, got %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.CreditRequest{ID: "cr-1", Status: entities.StatusEmAnalise}, nil)

		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrRequestNotApproved) {
			t.Fatalf("expected ErrRequestNotApproved, got %v", err)
		}
	})

	t.Run("already disbursed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.CreditRequest{ID: "cr-1", Status: entities.StatusEfetivada}, nil)

		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrAlreadyDisbursed) {
			t.Fatalf("expected ErrAlreadyDisbursed, got %v", err)
		}
	})

	t.Run("gateway failure wraps sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(approvedSeed(), nil)
		gateway.EXPECT().CreateDisbursement(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("timeout"))

		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrDisbursementGatewayFailed) {
			t.Fatalf("expected ErrDisbursementGatewayFailed, got %v", err)
		}
	})

	t.Run("provider rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(approvedSeed(), nil)
		gateway.EXPECT().CreateDisbursement(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", nil, nil)

		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrDisbursementGatewayRejected) {
			t.Fatalf("expected ErrDisbursementGatewayRejected, got %v", err)
		}
	})

	t.Run("success stamps efetivada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)
		uc.now = func() time.Time { return fixedNow }

		seed := approvedSeed()
		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(seed, nil)
		gateway.EXPECT().CreateDisbursement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if body["transaction_amount"] != 25000.0 {
					t.Fatalf("expected approved amount in payload, got %v", body["transaction_amount"])
				}
				if body["external_reference"] != seed.Number {
					t.Fatalf("expected request number as reference, got %v", body["external_reference"])
				}
				return "mp-77", "approved", payload, nil
			},
		)
		repo.EXPECT().Mutate(gomock.Any(), "cr-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn interfaces.MutateFunc) (entities.CreditRequest, error) {
				return fn(seed)
			},
		)

		res, err := uc.Disburse(context.Background(), "cr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusEfetivada || res.DisbursementID != "mp-77" {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.DisbursedAt == nil || !res.DisbursedAt.Equal(fixedNow) {
			t.Fatalf("expected disbursement timestamp")
		}
	})

	t.Run("concurrent second disbursement fails inside mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICreditRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIDisbursementGateway(ctrl)
		uc := NewDisbursementUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(approvedSeed(), nil)
		gateway.EXPECT().CreateDisbursement(gomock.Any(), gomock.Any()).Return("mp-77", "approved", nil, nil)

		// Another disbursement won the race between GetByID and Mutate.
		raced := approvedSeed()
		raced.Status = entities.StatusEfetivada
		repo.EXPECT().Mutate(gomock.Any(), "cr-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn interfaces.MutateFunc) (entities.CreditRequest, error) {
				return fn(raced)
			},
		)

		if _, err := uc.Disburse(context.Background(), "cr-1"); !errors.Is(err, ErrRequestNotApproved) {
			t.Fatalf("expected ErrRequestNotApproved, got %v", err)
		}
	})
}
