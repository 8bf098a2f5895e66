package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestEmployeeGormRepository_UpdatePersistsPaymentMethodEdits(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeGormRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.Employee{
		Name:  "João",
		Role:  "Garçom",
		Value: decimal.NewFromInt(200),
		PaymentMethod: &entities.PaymentMethod{
			Name:  "Dinheiro",
			Value: decimal.NewFromInt(200),
			Date:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PaymentMethod == nil || created.PaymentMethod.ID == 0 {
		t.Fatalf("expected a persisted payment method, got %+v", created.PaymentMethod)
	}

	created.PaymentMethod.Name = "Pix"
	created.PaymentMethod.Value = decimal.NewFromInt(350)

	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	reread, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reread.PaymentMethod == nil || reread.PaymentMethod.Name != "Pix" || !reread.PaymentMethod.Value.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("payment method edit not stored: %+v", reread.PaymentMethod)
	}
}

func TestEmployeeGormRepository_DeleteRemovesOwnedPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeGormRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.Employee{
		Name:  "João",
		Role:  "Garçom",
		Value: decimal.NewFromInt(200),
		PaymentMethod: &entities.PaymentMethod{
			Name:  "Pix",
			Value: decimal.NewFromInt(200),
			Date:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := countPaymentMethods(t, db); got != 1 {
		t.Fatalf("expected 1 payment method row, got %d", got)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if e, err := repo.GetByID(ctx, created.ID); err != nil || e.ID != 0 {
		t.Fatalf("expected employee gone, got %+v (err %v)", e, err)
	}
	if got := countPaymentMethods(t, db); got != 0 {
		t.Fatalf("expected payment method row removed, got %d", got)
	}

	if err := repo.Delete(ctx, 999); err != nil {
		t.Fatalf("deleting an absent id should be a no-op: %v", err)
	}
}
