package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

// IPaymentMethodRepository abstracts persistence for the standalone payment
// method registry.
type IPaymentMethodRepository interface {
	Create(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id uint) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	Update(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
}
