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
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudget       = errors.New("invalid budget")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
)

// CreateBudgetInput carries the fields callers may set on a budget. The total
// price is always derived, never accepted.
type CreateBudgetInput struct {
	Client         ClientInput
	EventDate      time.Time
	Deadline       time.Time
	Headcount      int
	PricePerPerson decimal.Decimal
	Menus          []entities.Menu
	Employees      []entities.Employee
}

// IBudgetRenderer turns a budget into a printable document.
type IBudgetRenderer interface {
	Render(b entities.Budget) ([]byte, error)
}

type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	Get(ctx context.Context, id uint) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, id uint, in CreateBudgetInput) (entities.Budget, error)
	ChangeStatus(ctx context.Context, id uint, status entities.BudgetStatus) (entities.Budget, error)
	Delete(ctx context.Context, id uint) error
	RenderPdf(ctx context.Context, id uint) ([]byte, error)
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	clients  interfaces.IClientRepository
	events   IEventUseCase
	tx       interfaces.ITxManager
	renderer IBudgetRenderer
	now      func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	clients interfaces.IClientRepository,
	events IEventUseCase,
	tx interfaces.ITxManager,
	renderer IBudgetRenderer,
) *BudgetUseCase {
	return &BudgetUseCase{
		repo:     repo,
		clients:  clients,
		events:   events,
		tx:       tx,
		renderer: renderer,
		now:      time.Now,
	}
}

// Create resolves the client (by id, or find-or-create by tax id), computes
// the total price and persists the budget as PENDENTE.
func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	if err := validateBudgetInput(in); err != nil {
		return entities.Budget{}, err
	}

	client, err := u.resolveClient(ctx, in.Client, true)
	if err != nil {
		return entities.Budget{}, err
	}

	b := entities.Budget{
		ClientID:       client.ID,
		Client:         client,
		EventDate:      in.EventDate,
		Headcount:      in.Headcount,
		PricePerPerson: in.PricePerPerson,
		Status:         entities.BudgetStatusPendente,
		GeneratedAt:    u.now(),
		Deadline:       in.Deadline,
		Menus:          in.Menus,
		Employees:      in.Employees,
	}
	b.ComputeTotal()

	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) Get(ctx context.Context, id uint) (entities.Budget, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == 0 {
		return entities.Budget{}, fmt.Errorf("%w: id %d", ErrBudgetNotFound, id)
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

// Update overwrites the mutable fields and recomputes the total. The
// generation date is immutable and the client must already exist.
func (u *BudgetUseCase) Update(ctx context.Context, id uint, in CreateBudgetInput) (entities.Budget, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := validateBudgetInput(in); err != nil {
		return entities.Budget{}, err
	}

	client, err := u.resolveClient(ctx, in.Client, false)
	if err != nil {
		return entities.Budget{}, err
	}

	existing.ClientID = client.ID
	existing.Client = client
	existing.EventDate = in.EventDate
	existing.Headcount = in.Headcount
	existing.PricePerPerson = in.PricePerPerson
	existing.Deadline = in.Deadline
	existing.ComputeTotal()

	return u.repo.Update(ctx, existing)
}

// ChangeStatus persists the new status. If and only if the status moves from
// a non-accepted value to ACEITO, an event is created from the budget inside
// the same transaction. Re-accepting an already accepted budget is a no-op
// with respect to event creation.
func (u *BudgetUseCase) ChangeStatus(ctx context.Context, id uint, status entities.BudgetStatus) (entities.Budget, error) {
	if !status.Valid() {
		return entities.Budget{}, fmt.Errorf("%w: %q", ErrInvalidBudgetStatus, status)
	}

	var updated entities.Budget
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		b, err := u.Get(ctx, id)
		if err != nil {
			return err
		}

		previous := b.Status
		b.Status = status
		updated, err = u.repo.Update(ctx, b)
		if err != nil {
			return err
		}

		if previous != entities.BudgetStatusAceito && status == entities.BudgetStatusAceito {
			if _, err := u.events.CreateFromBudget(ctx, updated); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

// Delete removes the budget. Events previously created from it are untouched.
func (u *BudgetUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *BudgetUseCase) RenderPdf(ctx context.Context, id uint) ([]byte, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(b)
}

// resolveClient returns the referenced client. An explicit id must resolve;
// otherwise the tax id is looked up and, when createMissing is set, a new
// client is registered on the fly.
func (u *BudgetUseCase) resolveClient(ctx context.Context, in ClientInput, createMissing bool) (entities.Client, error) {
	if in.ID != 0 {
		client, err := u.clients.GetByID(ctx, in.ID)
		if err != nil {
			return entities.Client{}, err
		}
		if client.ID == 0 {
			return entities.Client{}, fmt.Errorf("%w: id %d", ErrClientNotFound, in.ID)
		}
		return client, nil
	}

	cpfCnpj := strings.TrimSpace(in.CpfCnpj)
	if cpfCnpj == "" {
		return entities.Client{}, ErrInvalidBudget
	}

	client, err := u.clients.GetByCpfCnpj(ctx, cpfCnpj)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID != 0 {
		return client, nil
	}
	if !createMissing {
		return entities.Client{}, fmt.Errorf("%w: cpf/cnpj %s", ErrClientNotFound, cpfCnpj)
	}

	c, err := clientFromInput(in)
	if err != nil {
		return entities.Client{}, err
	}
	return u.clients.Create(ctx, c)
}

func validateBudgetInput(in CreateBudgetInput) error {
	if in.Headcount <= 0 || in.PricePerPerson.Sign() <= 0 {
		return ErrInvalidBudget
	}
	if in.EventDate.IsZero() || in.Deadline.IsZero() {
		return ErrInvalidBudget
	}
	return nil
}
