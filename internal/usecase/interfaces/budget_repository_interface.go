package interfaces

import (
	"context"
	"laboratorio_xpto/internal/domain/entities"
)

// IBudgetRepository persists the composite budget (header, lines, payments)
// as a single record.
//
// GetByID returns a zero Budget (empty header ID) when nothing is stored.

type IBudgetRepository interface {
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
}
