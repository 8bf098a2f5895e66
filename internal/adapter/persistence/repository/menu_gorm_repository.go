package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MenuGormRepository persists Menu aggregates (items included) in Postgres.
type MenuGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMenuRepository = (*MenuGormRepository)(nil)

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

func (r *MenuGormRepository) Create(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	if err := dbFromContext(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Menu{}, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *MenuGormRepository) GetByID(ctx context.Context, id uint) (entities.Menu, error) {
	var m entities.Menu
	err := dbFromContext(ctx, r.db).Preload("Items").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Menu{}, nil
	}
	if err != nil {
		return entities.Menu{}, err
	}
	return m, nil
}

func (r *MenuGormRepository) List(ctx context.Context) ([]entities.Menu, error) {
	var menus []entities.Menu
	if err := dbFromContext(ctx, r.db).Preload("Items").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuGormRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Select(clause.Associations).Delete(&entities.Menu{ID: id}).Error
}
