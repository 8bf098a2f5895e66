package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.PaymentMethod{}, &entities.Supply{}, &entities.Employee{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countPaymentMethods(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&entities.PaymentMethod{}).Count(&n).Error; err != nil {
		t.Fatalf("count payment methods: %v", err)
	}
	return n
}

func TestSupplyGormRepository_UpdatePersistsPaymentMethodEdits(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplyGormRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.Supply{
		Name:    "Carnes",
		Value:   decimal.NewFromInt(120),
		EventID: 9,
		PaymentMethod: &entities.PaymentMethod{
			Name:  "Dinheiro",
			Value: decimal.NewFromInt(120),
			Date:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PaymentMethod == nil || created.PaymentMethod.ID == 0 {
		t.Fatalf("expected a persisted payment method, got %+v", created.PaymentMethod)
	}

	created.Value = decimal.NewFromInt(80)
	created.PaymentMethod.Name = "Pix"
	created.PaymentMethod.Value = decimal.NewFromInt(80)

	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaymentMethod == nil || updated.PaymentMethod.Name != "Pix" {
		t.Fatalf("payment method edit lost on update: %+v", updated.PaymentMethod)
	}
	if !updated.PaymentMethod.Value.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("payment method value lost on update: %s", updated.PaymentMethod.Value)
	}

	reread, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reread.PaymentMethod == nil || reread.PaymentMethod.Name != "Pix" || !reread.PaymentMethod.Value.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("payment method edit not stored: %+v", reread.PaymentMethod)
	}
	if reread.PaymentMethod.ID != created.PaymentMethod.ID {
		t.Fatalf("expected the same payment method row, got %d and %d", reread.PaymentMethod.ID, created.PaymentMethod.ID)
	}
}

func TestSupplyGormRepository_DeleteRemovesOwnedPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplyGormRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.Supply{
		Name:    "Carnes",
		Value:   decimal.NewFromInt(120),
		EventID: 9,
		PaymentMethod: &entities.PaymentMethod{
			Name:  "Pix",
			Value: decimal.NewFromInt(120),
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

	if s, err := repo.GetByID(ctx, created.ID); err != nil || s.ID != 0 {
		t.Fatalf("expected supply gone, got %+v (err %v)", s, err)
	}
	if got := countPaymentMethods(t, db); got != 0 {
		t.Fatalf("expected payment method row removed, got %d", got)
	}
}
