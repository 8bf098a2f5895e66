package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetGormRepository persists Budget aggregates (menus and staff included)
// in Postgres.
type BudgetGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBudgetRepository = (*BudgetGormRepository)(nil)

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{db: db}
}

func (r *BudgetGormRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	// Client rows are managed by the client repository; only the FK is written here.
	if err := dbFromContext(ctx, r.db).Omit("Client").Create(&b).Error; err != nil {
		return entities.Budget{}, err
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BudgetGormRepository) GetByID(ctx context.Context, id uint) (entities.Budget, error) {
	var b entities.Budget
	err := dbFromContext(ctx, r.db).
		Preload("Client").
		Preload("Menus.Items").
		Preload("Employees.PaymentMethod").
		First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Budget{}, nil
	}
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetGormRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var budgets []entities.Budget
	err := dbFromContext(ctx, r.db).
		Preload("Client").
		Preload("Menus.Items").
		Preload("Employees.PaymentMethod").
		Order("generated_at DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetGormRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	// Menus and staff are replaced through dedicated flows, not on a plain update.
	err := dbFromContext(ctx, r.db).Omit(clause.Associations).Save(&b).Error
	if err != nil {
		return entities.Budget{}, err
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BudgetGormRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Select(clause.Associations).Delete(&entities.Budget{ID: id}).Error
}
