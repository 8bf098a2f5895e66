package interfaces

import (
	"context"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// IEventRepository abstracts persistence for Event.
//
// List returns events in event-date-descending order. UpdateFinancials and
// UpdateStatus write only the named columns so concurrent field updates are
// not clobbered.
type IEventRepository interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id uint) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	ListByClientID(ctx context.Context, clientID uint) ([]entities.Event, error)
	Update(ctx context.Context, e entities.Event) (entities.Event, error)
	UpdateFinancials(ctx context.Context, id uint, expenses, profit decimal.Decimal) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}
