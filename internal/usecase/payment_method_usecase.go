package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
)

type IPaymentMethodUseCase interface {
	Create(ctx context.Context, in PaymentMethodInput) (entities.PaymentMethod, error)
	Get(ctx context.Context, id uint) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	Update(ctx context.Context, id uint, in PaymentMethodInput) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentMethodUseCase struct {
	repo interfaces.IPaymentMethodRepository
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(repo interfaces.IPaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

func (u *PaymentMethodUseCase) Create(ctx context.Context, in PaymentMethodInput) (entities.PaymentMethod, error) {
	if err := validatePaymentMethodInput(in); err != nil {
		return entities.PaymentMethod{}, err
	}
	p := entities.PaymentMethod{
		Name:  strings.TrimSpace(in.Name),
		Value: in.Value,
		Date:  in.Date,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentMethodUseCase) Get(ctx context.Context, id uint) (entities.PaymentMethod, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if p.ID == 0 {
		return entities.PaymentMethod{}, fmt.Errorf("%w: id %d", ErrPaymentMethodNotFound, id)
	}
	return p, nil
}

func (u *PaymentMethodUseCase) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	return u.repo.List(ctx)
}

func (u *PaymentMethodUseCase) Update(ctx context.Context, id uint, in PaymentMethodInput) (entities.PaymentMethod, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if err := validatePaymentMethodInput(in); err != nil {
		return entities.PaymentMethod{}, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Value = in.Value
	existing.Date = in.Date

	return u.repo.Update(ctx, existing)
}

func (u *PaymentMethodUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validatePaymentMethodInput(in PaymentMethodInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Date.IsZero() {
		return ErrInvalidPaymentMethod
	}
	if in.Value.Sign() < 0 {
		return ErrInvalidPaymentMethod
	}
	return nil
}
