package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// UserGormRepository persists API users in Postgres.
type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	if err := dbFromContext(ctx, r.db).Create(&u).Error; err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var u entities.User
	err := dbFromContext(ctx, r.db).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
