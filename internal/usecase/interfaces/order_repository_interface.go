package interfaces

import (
	"context"
	"laboratorio_xpto/internal/domain/entities"
)

// IOrderRepository stores the order record created on confirmation.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Order, error)
}

// IOrderEligibility answers whether a saved header may still become an order.
// An empty message means eligible.
type IOrderEligibility interface {
	ValidateOrderEligibility(ctx context.Context, headerID string) (string, error)
}

// IOrderEventPublisher notifies downstream services of a confirmed order.
type IOrderEventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, o entities.Order) error
}
