package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplyGormRepository persists Supply entities in Postgres.
type SupplyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISupplyRepository = (*SupplyGormRepository)(nil)

func NewSupplyGormRepository(db *gorm.DB) *SupplyGormRepository {
	return &SupplyGormRepository{db: db}
}

func (r *SupplyGormRepository) Create(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	if err := dbFromContext(ctx, r.db).Create(&s).Error; err != nil {
		return entities.Supply{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SupplyGormRepository) GetByID(ctx context.Context, id uint) (entities.Supply, error) {
	var s entities.Supply
	err := dbFromContext(ctx, r.db).Preload("PaymentMethod").First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Supply{}, nil
	}
	if err != nil {
		return entities.Supply{}, err
	}
	return s, nil
}

func (r *SupplyGormRepository) List(ctx context.Context) ([]entities.Supply, error) {
	var supplies []entities.Supply
	if err := dbFromContext(ctx, r.db).Preload("PaymentMethod").Find(&supplies).Error; err != nil {
		return nil, err
	}
	return supplies, nil
}

func (r *SupplyGormRepository) ListByEventID(ctx context.Context, eventID uint) ([]entities.Supply, error) {
	var supplies []entities.Supply
	err := dbFromContext(ctx, r.db).
		Preload("PaymentMethod").
		Where("event_id = ?", eventID).
		Find(&supplies).Error
	if err != nil {
		return nil, err
	}
	return supplies, nil
}

// SumValueByEventID totals the supply spend of one event in SQL so the
// financial recalculation never loads the rows.
func (r *SupplyGormRepository) SumValueByEventID(ctx context.Context, eventID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := dbFromContext(ctx, r.db).
		Model(&entities.Supply{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *SupplyGormRepository) Update(ctx context.Context, s entities.Supply) (entities.Supply, error) {
	db := dbFromContext(ctx, r.db)
	// Save's association upsert never touches an existing payment method row,
	// so in-place edits have to be written explicitly.
	if s.PaymentMethod != nil && s.PaymentMethod.ID != 0 {
		if err := db.Save(s.PaymentMethod).Error; err != nil {
			return entities.Supply{}, err
		}
	}
	if err := db.Save(&s).Error; err != nil {
		return entities.Supply{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SupplyGormRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	var s entities.Supply
	err := db.First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := db.Delete(&entities.Supply{ID: id}).Error; err != nil {
		return err
	}
	// The payment method row is owned by the supply it was created with.
	if s.PaymentMethodID != nil {
		return db.Delete(&entities.PaymentMethod{}, *s.PaymentMethodID).Error
	}
	return nil
}
