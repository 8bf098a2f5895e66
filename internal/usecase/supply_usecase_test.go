package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"
	mock_interfaces "github.com/ceccimesquita/papillon/internal/usecase/interfaces/mocks"
	"github.com/ceccimesquita/papillon/internal/usecase/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type supplyFixture struct {
	repo   *mock_interfaces.MockISupplyRepository
	events *mocks.MockIEventUseCase
	tx     *mock_interfaces.MockITxManager
	uc     *usecase.SupplyUseCase
}

func newSupplyFixture(t *testing.T) *supplyFixture {
	ctrl := gomock.NewController(t)
	f := &supplyFixture{
		repo:   mock_interfaces.NewMockISupplyRepository(ctrl),
		events: mocks.NewMockIEventUseCase(ctrl),
		tx:     mock_interfaces.NewMockITxManager(ctrl),
	}
	f.uc = usecase.NewSupplyUseCase(f.repo, f.events, f.tx)
	f.tx.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return f
}

func TestSupplyUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newSupplyFixture(t)
		_, err := f.uc.Create(context.Background(), usecase.SupplyInput{Name: " ", EventID: 9})
		if !errors.Is(err, usecase.ErrInvalidSupply) {
			t.Fatalf("expected ErrInvalidSupply, got %v", err)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.events.EXPECT().Get(gomock.Any(), uint(9)).Return(entities.Event{}, usecase.ErrEventNotFound)

		_, err := f.uc.Create(context.Background(), usecase.SupplyInput{Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 9})
		if !errors.Is(err, usecase.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("persists and recalculates the event", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.events.EXPECT().Get(gomock.Any(), uint(9)).Return(entities.Event{ID: 9}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supply) (entities.Supply, error) {
				if s.Name != "Carnes" || s.EventID != 9 {
					t.Fatalf("unexpected supply: %+v", s)
				}
				if s.PaymentMethod == nil || s.PaymentMethod.Name != "Pix" {
					t.Fatalf("expected owned payment method, got %+v", s.PaymentMethod)
				}
				s.ID = 4
				return s, nil
			},
		)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(9)).Return(nil)

		res, err := f.uc.Create(context.Background(), usecase.SupplyInput{
			Name:    "Carnes",
			Value:   decimal.NewFromInt(120),
			EventID: 9,
			PaymentMethod: &usecase.PaymentMethodInput{
				Name:  "Pix",
				Value: decimal.NewFromInt(120),
				Date:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 4 {
			t.Fatalf("unexpected supply: %+v", res)
		}
	})

	t.Run("recalculation failure aborts", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.events.EXPECT().Get(gomock.Any(), uint(9)).Return(entities.Event{ID: 9}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supply{ID: 4, EventID: 9}, nil)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(9)).Return(errors.New("db"))

		_, err := f.uc.Create(context.Background(), usecase.SupplyInput{Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 9})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSupplyUseCase_Update(t *testing.T) {
	existing := entities.Supply{ID: 4, Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 9}

	t.Run("not found", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Supply{}, nil)

		_, err := f.uc.Update(context.Background(), 4, usecase.SupplyInput{Name: "Carnes", Value: decimal.NewFromInt(30), EventID: 9})
		if !errors.Is(err, usecase.ErrSupplyNotFound) {
			t.Fatalf("expected ErrSupplyNotFound, got %v", err)
		}
	})

	t.Run("same event recalculates once", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(existing, nil)
		f.events.EXPECT().Get(gomock.Any(), uint(9)).Return(entities.Event{ID: 9}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supply) (entities.Supply, error) {
				if !s.Value.Equal(decimal.NewFromInt(30)) {
					t.Fatalf("expected value 30, got %s", s.Value)
				}
				return s, nil
			},
		)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(9)).Return(nil)

		if _, err := f.uc.Update(context.Background(), 4, usecase.SupplyInput{Name: "Carnes", Value: decimal.NewFromInt(30), EventID: 9}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("moving events recalculates both", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(existing, nil)
		f.events.EXPECT().Get(gomock.Any(), uint(12)).Return(entities.Event{ID: 12}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supply) (entities.Supply, error) {
				if s.EventID != 12 {
					t.Fatalf("expected event 12, got %d", s.EventID)
				}
				return s, nil
			},
		)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(12)).Return(nil)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(9)).Return(nil)

		if _, err := f.uc.Update(context.Background(), 4, usecase.SupplyInput{Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 12}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSupplyUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Supply{}, nil)

		err := f.uc.Delete(context.Background(), 4)
		if !errors.Is(err, usecase.ErrSupplyNotFound) {
			t.Fatalf("expected ErrSupplyNotFound, got %v", err)
		}
	})

	t.Run("removes and recalculates the owning event", func(t *testing.T) {
		f := newSupplyFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Supply{ID: 4, EventID: 9}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)
		f.events.EXPECT().RecalculateFinancials(gomock.Any(), uint(9)).Return(nil)

		if err := f.uc.Delete(context.Background(), 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
