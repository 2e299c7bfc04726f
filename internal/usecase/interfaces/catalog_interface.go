package interfaces

import (
	"context"
	"laboratorio_xpto/internal/domain/entities"
)

// IPriceRepository returns the price of an exam under a plan, or 0 when the
// plan has no price record for it.
type IPriceRepository interface {
	GetPrice(ctx context.Context, planID, examCode string) (float64, error)
}

// IExamCatalog exposes the per-exam data the budget engine needs.
type IExamCatalog interface {
	GetInstructionText(ctx context.Context, examCode string) (entities.ExamInstructions, error)
	GetTurnaround(ctx context.Context, examID string) (int, error)
	RequiresScheduling(ctx context.Context, examID string) (bool, error)
}

// IPermissionRepository resolves per-user permissions.
type IPermissionRepository interface {
	DiscountEditable(ctx context.Context, userID string) (bool, error)
}
