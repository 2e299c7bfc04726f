package usecase

import (
	"context"
	"errors"
	"testing"

	"laboratorio_xpto/internal/domain/entities"
	mock_interfaces "laboratorio_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderEligibility_ValidateOrderEligibility(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (*OrderEligibility, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockIOrderRepository) {
		ctrl := gomock.NewController(t)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		return NewOrderEligibility(budgets, orders), budgets, orders
	}

	t.Run("unsaved header is eligible", func(t *testing.T) {
		e, _, _ := setup(t)
		msg, err := e.ValidateOrderEligibility(ctx, "")
		if err != nil || msg != "" {
			t.Fatalf("expected eligible, got %q/%v", msg, err)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		e, _, orders := setup(t)
		orders.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Order{ID: "o-1"}, nil)
		msg, err := e.ValidateOrderEligibility(ctx, "b-1")
		if err != nil || msg != msgAlreadyConverted {
			t.Fatalf("expected %q, got %q/%v", msgAlreadyConverted, msg, err)
		}
	})

	t.Run("stored budget no longer open", func(t *testing.T) {
		e, budgets, orders := setup(t)
		orders.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Order{}, nil)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{Header: entities.Header{ID: "b-1", Status: entities.HeaderStatusCancelado}}, nil)
		msg, err := e.ValidateOrderEligibility(ctx, "b-1")
		if err != nil || msg != msgNotOpen {
			t.Fatalf("expected %q, got %q/%v", msgNotOpen, msg, err)
		}
	})

	t.Run("open draft", func(t *testing.T) {
		e, budgets, orders := setup(t)
		orders.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Order{}, nil)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{Header: entities.Header{ID: "b-1", Status: entities.HeaderStatusOrcamento}}, nil)
		msg, err := e.ValidateOrderEligibility(ctx, "b-1")
		if err != nil || msg != "" {
			t.Fatalf("expected eligible, got %q/%v", msg, err)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		e, _, orders := setup(t)
		orders.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Order{}, errors.New("db"))
		if _, err := e.ValidateOrderEligibility(ctx, "b-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
