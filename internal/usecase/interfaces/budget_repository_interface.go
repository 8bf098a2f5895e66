package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for Budget.
//
// GetByID loads the budget together with its client and its owned menu and
// employee collections.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id uint) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id uint) error
}
