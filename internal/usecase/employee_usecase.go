package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
	"github.com/shopspring/decimal"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidEmployee  = errors.New("invalid employee")
)

type EmployeeInput struct {
	Name          string
	Role          string
	Value         decimal.Decimal
	PaymentMethod *PaymentMethodInput
	EventID       *uint
}

type IEmployeeUseCase interface {
	Create(ctx context.Context, in EmployeeInput) (entities.Employee, error)
	Get(ctx context.Context, id uint) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, id uint, in EmployeeInput) (entities.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Create(ctx context.Context, in EmployeeInput) (entities.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return entities.Employee{}, err
	}

	e := entities.Employee{
		Name:          strings.TrimSpace(in.Name),
		Role:          strings.TrimSpace(in.Role),
		Value:         in.Value,
		PaymentMethod: paymentMethodFromInput(in.PaymentMethod),
		EventID:       in.EventID,
	}
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) Get(ctx context.Context, id uint) (entities.Employee, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == 0 {
		return entities.Employee{}, fmt.Errorf("%w: id %d", ErrEmployeeNotFound, id)
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id uint, in EmployeeInput) (entities.Employee, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := validateEmployeeInput(in); err != nil {
		return entities.Employee{}, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Role = strings.TrimSpace(in.Role)
	existing.Value = in.Value
	existing.EventID = in.EventID
	if in.PaymentMethod != nil {
		if existing.PaymentMethod == nil {
			existing.PaymentMethod = paymentMethodFromInput(in.PaymentMethod)
		} else {
			existing.PaymentMethod.Name = strings.TrimSpace(in.PaymentMethod.Name)
			existing.PaymentMethod.Value = in.PaymentMethod.Value
			existing.PaymentMethod.Date = in.PaymentMethod.Date
		}
	}

	return u.repo.Update(ctx, existing)
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validateEmployeeInput(in EmployeeInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Role) == "" {
		return ErrInvalidEmployee
	}
	if in.Value.Sign() < 0 {
		return ErrInvalidEmployee
	}
	return nil
}
