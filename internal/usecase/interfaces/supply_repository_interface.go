package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// ISupplyRepository abstracts persistence for Supply.
//
// SumValueByEventID returns the total value of all supplies currently linked
// to the event; zero when there are none. Delete removes the cascade-owned
// payment method row together with the supply.
type ISupplyRepository interface {
	Create(ctx context.Context, s entities.Supply) (entities.Supply, error)
	GetByID(ctx context.Context, id uint) (entities.Supply, error)
	List(ctx context.Context) ([]entities.Supply, error)
	ListByEventID(ctx context.Context, eventID uint) ([]entities.Supply, error)
	SumValueByEventID(ctx context.Context, eventID uint) (decimal.Decimal, error)
	Update(ctx context.Context, s entities.Supply) (entities.Supply, error)
	Delete(ctx context.Context, id uint) error
}
