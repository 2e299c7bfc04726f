package usecase

import (
	"context"
	"errors"
	"testing"

	"laboratorio_xpto/internal/domain/entities"
	mock_interfaces "laboratorio_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPriceResolver_ResolvePrice(t *testing.T) {
	t.Run("empty inputs are not priced", func(t *testing.T) {
		r := NewPriceResolver(nil)
		p, err := r.ResolvePrice(context.Background(), " ", "GLI")
		if err != nil || p != 0 {
			t.Fatalf("expected 0/nil, got %v/%v", p, err)
		}
	})

	t.Run("negative price is not priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceRepository(ctrl)
		repo.EXPECT().GetPrice(gomock.Any(), "plan-a", "GLI").Return(-5.0, nil)

		p, err := NewPriceResolver(repo).ResolvePrice(context.Background(), "plan-a", " GLI ")
		if err != nil || p != 0 {
			t.Fatalf("expected 0/nil, got %v/%v", p, err)
		}
	})
}

func TestPriceResolver_ResolveAll(t *testing.T) {
	items := []entities.LineItem{{ExamCode: "GLI"}, {ExamCode: "HMG"}, {ExamCode: "TSH"}}

	t.Run("one lookup per item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceRepository(ctrl)
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "GLI").Return(12.5, nil)
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "HMG").Return(30.0, nil)
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "TSH").Return(0.0, nil)

		prices, err := NewPriceResolver(repo).ResolveAll(context.Background(), "plan-b", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(prices) != 3 || prices["GLI"] != 12.5 || prices["HMG"] != 30 || prices["TSH"] != 0 {
			t.Fatalf("unexpected prices: %v", prices)
		}
	})

	t.Run("all or nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceRepository(ctrl)
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "GLI").Return(12.5, nil).AnyTimes()
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "HMG").Return(0.0, errors.New("throttled")).AnyTimes()
		repo.EXPECT().GetPrice(gomock.Any(), "plan-b", "TSH").Return(8.0, nil).AnyTimes()

		prices, err := NewPriceResolver(repo).ResolveAll(context.Background(), "plan-b", items)
		if err == nil || prices != nil {
			t.Fatalf("expected failure and no prices, got %v/%v", prices, err)
		}
	})
}
