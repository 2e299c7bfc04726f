package usecase

import (
	"context"
	"strings"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"
)

const (
	msgAlreadyConverted = "Orçamento já convertido em pedido."
	msgNotOpen          = "Orçamento não está em aberto."
)

// OrderEligibility implements the "may this header still become an order"
// check against stored budgets and orders. One order per budget.
type OrderEligibility struct {
	budgets interfaces.IBudgetRepository
	orders  interfaces.IOrderRepository
}

var _ interfaces.IOrderEligibility = (*OrderEligibility)(nil)

func NewOrderEligibility(budgets interfaces.IBudgetRepository, orders interfaces.IOrderRepository) *OrderEligibility {
	return &OrderEligibility{budgets: budgets, orders: orders}
}

// ValidateOrderEligibility returns a blocking message, or "" when eligible.
// A header never saved is eligible.
func (e *OrderEligibility) ValidateOrderEligibility(ctx context.Context, headerID string) (string, error) {
	headerID = strings.TrimSpace(headerID)
	if headerID == "" {
		return "", nil
	}

	existing, err := e.orders.GetByBudgetID(ctx, headerID)
	if err != nil {
		return "", err
	}
	if existing.ID != "" {
		return msgAlreadyConverted, nil
	}

	stored, err := e.budgets.GetByID(ctx, headerID)
	if err != nil {
		return "", err
	}
	if stored.Header.ID != "" && stored.Header.Status != entities.HeaderStatusOrcamento {
		return msgNotOpen, nil
	}
	return "", nil
}
