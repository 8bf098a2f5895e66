package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
	"github.com/shopspring/decimal"
)

var (
	ErrSupplyNotFound = errors.New("supply not found")
	ErrInvalidSupply  = errors.New("invalid supply")
)

// PaymentMethodInput describes the cascade-owned payment method of a supply
// or employee.
type PaymentMethodInput struct {
	Name  string
	Value decimal.Decimal
	Date  time.Time
}

// SupplyInput carries the fields callers may set on a supply.
type SupplyInput struct {
	Name          string
	Value         decimal.Decimal
	EventID       uint
	PaymentMethod *PaymentMethodInput
}

type ISupplyUseCase interface {
	Create(ctx context.Context, in SupplyInput) (entities.Supply, error)
	Get(ctx context.Context, id uint) (entities.Supply, error)
	List(ctx context.Context) ([]entities.Supply, error)
	ListByEvent(ctx context.Context, eventID uint) ([]entities.Supply, error)
	Update(ctx context.Context, id uint, in SupplyInput) (entities.Supply, error)
	Delete(ctx context.Context, id uint) error
}

type SupplyUseCase struct {
	repo   interfaces.ISupplyRepository
	events IEventUseCase
	tx     interfaces.ITxManager
}

var _ ISupplyUseCase = (*SupplyUseCase)(nil)

func NewSupplyUseCase(repo interfaces.ISupplyRepository, events IEventUseCase, tx interfaces.ITxManager) *SupplyUseCase {
	return &SupplyUseCase{repo: repo, events: events, tx: tx}
}

// Create persists the supply against an existing event and restores that
// event's financials, all in one transaction.
func (u *SupplyUseCase) Create(ctx context.Context, in SupplyInput) (entities.Supply, error) {
	if err := validateSupplyInput(in); err != nil {
		return entities.Supply{}, err
	}

	var created entities.Supply
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := u.events.Get(ctx, in.EventID); err != nil {
			return err
		}

		s := entities.Supply{
			Name:          strings.TrimSpace(in.Name),
			Value:         in.Value,
			EventID:       in.EventID,
			PaymentMethod: paymentMethodFromInput(in.PaymentMethod),
		}

		var err error
		created, err = u.repo.Create(ctx, s)
		if err != nil {
			return err
		}
		return u.events.RecalculateFinancials(ctx, in.EventID)
	})
	if err != nil {
		return entities.Supply{}, err
	}
	return created, nil
}

func (u *SupplyUseCase) Get(ctx context.Context, id uint) (entities.Supply, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supply{}, err
	}
	if s.ID == 0 {
		return entities.Supply{}, fmt.Errorf("%w: id %d", ErrSupplyNotFound, id)
	}
	return s, nil
}

func (u *SupplyUseCase) List(ctx context.Context) ([]entities.Supply, error) {
	return u.repo.List(ctx)
}

func (u *SupplyUseCase) ListByEvent(ctx context.Context, eventID uint) ([]entities.Supply, error) {
	if _, err := u.events.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return u.repo.ListByEventID(ctx, eventID)
}

// Update overwrites the supply. When the owning event changes, both the old
// and the new event come out with correct financials.
func (u *SupplyUseCase) Update(ctx context.Context, id uint, in SupplyInput) (entities.Supply, error) {
	if err := validateSupplyInput(in); err != nil {
		return entities.Supply{}, err
	}

	var updated entities.Supply
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := u.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := u.events.Get(ctx, in.EventID); err != nil {
			return err
		}

		previousEventID := existing.EventID

		existing.Name = strings.TrimSpace(in.Name)
		existing.Value = in.Value
		existing.EventID = in.EventID
		applyPaymentMethod(&existing, in.PaymentMethod)

		updated, err = u.repo.Update(ctx, existing)
		if err != nil {
			return err
		}

		if err := u.events.RecalculateFinancials(ctx, in.EventID); err != nil {
			return err
		}
		if previousEventID != in.EventID {
			return u.events.RecalculateFinancials(ctx, previousEventID)
		}
		return nil
	})
	if err != nil {
		return entities.Supply{}, err
	}
	return updated, nil
}

// Delete removes the supply and restores the owning event's financials.
func (u *SupplyUseCase) Delete(ctx context.Context, id uint) error {
	return u.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := u.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := u.repo.Delete(ctx, id); err != nil {
			return err
		}
		return u.events.RecalculateFinancials(ctx, existing.EventID)
	})
}

func paymentMethodFromInput(in *PaymentMethodInput) *entities.PaymentMethod {
	if in == nil {
		return nil
	}
	return &entities.PaymentMethod{
		Name:  strings.TrimSpace(in.Name),
		Value: in.Value,
		Date:  in.Date,
	}
}

// applyPaymentMethod updates the owned payment method in place, keeping its
// row id so the cascade ownership survives the update.
func applyPaymentMethod(s *entities.Supply, in *PaymentMethodInput) {
	if in == nil {
		return
	}
	if s.PaymentMethod == nil {
		s.PaymentMethod = paymentMethodFromInput(in)
		return
	}
	s.PaymentMethod.Name = strings.TrimSpace(in.Name)
	s.PaymentMethod.Value = in.Value
	s.PaymentMethod.Date = in.Date
}

func validateSupplyInput(in SupplyInput) error {
	if strings.TrimSpace(in.Name) == "" || in.EventID == 0 {
		return ErrInvalidSupply
	}
	if in.Value.Sign() < 0 {
		return ErrInvalidSupply
	}
	return nil
}
