package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	mock_interfaces "github.com/ceccimesquita/papillon/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newEmployeeUseCaseForTest(t *testing.T) (*EmployeeUseCase, *mock_interfaces.MockIEmployeeRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	return NewEmployeeUseCase(repo), repo
}

func TestEmployeeUseCase_Create(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		uc, _ := newEmployeeUseCaseForTest(t)
		_, err := uc.Create(context.Background(), EmployeeInput{Name: "João", Value: decimal.NewFromInt(200)})
		if !errors.Is(err, ErrInvalidEmployee) {
			t.Fatalf("expected ErrInvalidEmployee, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc, _ := newEmployeeUseCaseForTest(t)
		_, err := uc.Create(context.Background(), EmployeeInput{Name: "João", Role: "Garçom", Value: decimal.NewFromInt(-1)})
		if !errors.Is(err, ErrInvalidEmployee) {
			t.Fatalf("expected ErrInvalidEmployee, got %v", err)
		}
	})

	t.Run("persists with owned payment method", func(t *testing.T) {
		uc, repo := newEmployeeUseCaseForTest(t)
		eventID := uint(9)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.Name != "João" || e.Role != "Garçom" {
					t.Fatalf("unexpected employee: %+v", e)
				}
				if e.EventID == nil || *e.EventID != 9 {
					t.Fatalf("expected event 9, got %v", e.EventID)
				}
				if e.PaymentMethod == nil || e.PaymentMethod.Name != "Dinheiro" {
					t.Fatalf("expected payment method, got %+v", e.PaymentMethod)
				}
				e.ID = 5
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), EmployeeInput{
			Name:    " João ",
			Role:    " Garçom ",
			Value:   decimal.NewFromInt(200),
			EventID: &eventID,
			PaymentMethod: &PaymentMethodInput{
				Name:  "Dinheiro",
				Value: decimal.NewFromInt(200),
				Date:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 5 {
			t.Fatalf("unexpected employee: %+v", res)
		}
	})
}

func TestEmployeeUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newEmployeeUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Employee{}, nil)

		_, err := uc.Update(context.Background(), 5, EmployeeInput{Name: "João", Role: "Garçom"})
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("keeps the payment method row", func(t *testing.T) {
		uc, repo := newEmployeeUseCaseForTest(t)
		pmID := uint(11)
		repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Employee{
			ID:              5,
			Name:            "João",
			Role:            "Garçom",
			Value:           decimal.NewFromInt(200),
			PaymentMethodID: &pmID,
			PaymentMethod:   &entities.PaymentMethod{ID: 11, Name: "Dinheiro", Value: decimal.NewFromInt(200)},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.PaymentMethod == nil || e.PaymentMethod.ID != 11 {
					t.Fatalf("payment method row lost: %+v", e.PaymentMethod)
				}
				if e.PaymentMethod.Name != "Pix" {
					t.Fatalf("expected updated method name, got %q", e.PaymentMethod.Name)
				}
				return e, nil
			},
		)

		_, err := uc.Update(context.Background(), 5, EmployeeInput{
			Name:          "João",
			Role:          "Chefe de cozinha",
			Value:         decimal.NewFromInt(350),
			PaymentMethod: &PaymentMethodInput{Name: "Pix", Value: decimal.NewFromInt(350)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
