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
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidEvent  = errors.New("invalid event")
)

// CreateEventInput carries the fields callers may set on an event. Expenses
// and profit are derived state and are never accepted from callers.
type CreateEventInput struct {
	Name      string
	ClientID  uint
	Date      time.Time
	Amount    decimal.Decimal
	Status    string
	Headcount int
}

type IEventUseCase interface {
	Create(ctx context.Context, in CreateEventInput) (entities.Event, error)
	CreateFromBudget(ctx context.Context, b entities.Budget) (entities.Event, error)
	Get(ctx context.Context, id uint) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	ListByClient(ctx context.Context, clientID uint) ([]entities.Event, error)
	Update(ctx context.Context, id uint, in CreateEventInput) (entities.Event, error)
	ChangeStatus(ctx context.Context, id uint, status string) error
	RecalculateFinancials(ctx context.Context, eventID uint) error
	Delete(ctx context.Context, id uint) error
}

type EventUseCase struct {
	repo     interfaces.IEventRepository
	clients  interfaces.IClientRepository
	supplies interfaces.ISupplyRepository
}

var _ IEventUseCase = (*EventUseCase)(nil)

func NewEventUseCase(repo interfaces.IEventRepository, clients interfaces.IClientRepository, supplies interfaces.ISupplyRepository) *EventUseCase {
	return &EventUseCase{repo: repo, clients: clients, supplies: supplies}
}

func (u *EventUseCase) Create(ctx context.Context, in CreateEventInput) (entities.Event, error) {
	if err := validateEventInput(in); err != nil {
		return entities.Event{}, err
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Event{}, err
	}
	if client.ID == 0 {
		return entities.Event{}, fmt.Errorf("%w: id %d", ErrClientNotFound, in.ClientID)
	}

	status := in.Status
	if status == "" {
		status = entities.EventStatusPendente
	}

	ev := entities.Event{
		Name:      strings.TrimSpace(in.Name),
		ClientID:  client.ID,
		Date:      in.Date,
		Amount:    in.Amount,
		Expenses:  decimal.Zero,
		Profit:    in.Amount,
		Status:    status,
		Headcount: in.Headcount,
	}
	return u.repo.Create(ctx, ev)
}

// CreateFromBudget derives an event from an accepted budget. The budget's
// menus and employees are copied into rows owned by the event, so later edits
// on either side never leak across.
func (u *EventUseCase) CreateFromBudget(ctx context.Context, b entities.Budget) (entities.Event, error) {
	if b.ClientID == 0 || b.Client.ID == 0 {
		return entities.Event{}, fmt.Errorf("%w: budget %d has no client", ErrClientNotFound, b.ID)
	}

	menus := make([]entities.Menu, 0, len(b.Menus))
	for _, m := range b.Menus {
		menus = append(menus, m.Copy())
	}
	employees := make([]entities.Employee, 0, len(b.Employees))
	for _, e := range b.Employees {
		employees = append(employees, e.Copy())
	}

	ev := entities.Event{
		Name:      "Evento para " + b.Client.Name,
		ClientID:  b.ClientID,
		Date:      b.EventDate,
		Amount:    b.TotalPrice,
		Expenses:  decimal.Zero,
		Profit:    b.TotalPrice,
		Status:    entities.EventStatusPendente,
		Headcount: b.Headcount,
		Menus:     menus,
		Employees: employees,
	}
	return u.repo.Create(ctx, ev)
}

func (u *EventUseCase) Get(ctx context.Context, id uint) (entities.Event, error) {
	ev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if ev.ID == 0 {
		return entities.Event{}, fmt.Errorf("%w: id %d", ErrEventNotFound, id)
	}
	return ev, nil
}

func (u *EventUseCase) List(ctx context.Context) ([]entities.Event, error) {
	return u.repo.List(ctx)
}

func (u *EventUseCase) ListByClient(ctx context.Context, clientID uint) ([]entities.Event, error) {
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *EventUseCase) Update(ctx context.Context, id uint, in CreateEventInput) (entities.Event, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if err := validateEventInput(in); err != nil {
		return entities.Event{}, err
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Event{}, err
	}
	if client.ID == 0 {
		return entities.Event{}, fmt.Errorf("%w: id %d", ErrClientNotFound, in.ClientID)
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.ClientID = client.ID
	existing.Client = client
	existing.Date = in.Date
	existing.Amount = in.Amount
	existing.Headcount = in.Headcount
	if in.Status != "" {
		existing.Status = in.Status
	}
	// keep the financial invariant intact when the contracted value moves
	existing.Profit = existing.Amount.Sub(existing.Expenses)

	return u.repo.Update(ctx, existing)
}

func (u *EventUseCase) ChangeStatus(ctx context.Context, id uint, status string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.UpdateStatus(ctx, id, status)
}

// RecalculateFinancials restores expenses = Σ supply values and
// profit = amount − expenses for the event. Supply mutations call this inside
// their own transaction; reads trust the stored values.
func (u *EventUseCase) RecalculateFinancials(ctx context.Context, eventID uint) error {
	ev, err := u.Get(ctx, eventID)
	if err != nil {
		return err
	}

	expenses, err := u.supplies.SumValueByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	profit := ev.Amount.Sub(expenses)

	return u.repo.UpdateFinancials(ctx, eventID, expenses, profit)
}

func (u *EventUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validateEventInput(in CreateEventInput) error {
	if strings.TrimSpace(in.Name) == "" || in.ClientID == 0 || in.Date.IsZero() {
		return ErrInvalidEvent
	}
	if in.Amount.Sign() < 0 {
		return ErrInvalidEvent
	}
	return nil
}
