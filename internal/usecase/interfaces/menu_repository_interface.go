package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

// IMenuRepository abstracts persistence for Menu; items ride along with
// their menu on every operation.
type IMenuRepository interface {
	Create(ctx context.Context, m entities.Menu) (entities.Menu, error)
	GetByID(ctx context.Context, id uint) (entities.Menu, error)
	List(ctx context.Context) ([]entities.Menu, error)
	Delete(ctx context.Context, id uint) error
}
