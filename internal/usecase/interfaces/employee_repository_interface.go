package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

// IEmployeeRepository abstracts persistence for Employee.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id uint) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id uint) error
}
