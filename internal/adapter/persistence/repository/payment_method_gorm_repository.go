package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PaymentMethodGormRepository persists PaymentMethod entities in Postgres.
type PaymentMethodGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodGormRepository)(nil)

func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

func (r *PaymentMethodGormRepository) Create(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	if err := dbFromContext(ctx, r.db).Create(&p).Error; err != nil {
		return entities.PaymentMethod{}, err
	}
	return p, nil
}

func (r *PaymentMethodGormRepository) GetByID(ctx context.Context, id uint) (entities.PaymentMethod, error) {
	var p entities.PaymentMethod
	err := dbFromContext(ctx, r.db).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PaymentMethod{}, nil
	}
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	return p, nil
}

func (r *PaymentMethodGormRepository) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	var methods []entities.PaymentMethod
	if err := dbFromContext(ctx, r.db).Order("date DESC").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodGormRepository) Update(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	if err := dbFromContext(ctx, r.db).Save(&p).Error; err != nil {
		return entities.PaymentMethod{}, err
	}
	return p, nil
}

func (r *PaymentMethodGormRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Delete(&entities.PaymentMethod{}, id).Error
}
