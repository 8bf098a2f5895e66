package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ClientGormRepository persists Client entities in Postgres.
type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := dbFromContext(ctx, r.db).Create(&c).Error; err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (entities.Client, error) {
	var c entities.Client
	err := dbFromContext(ctx, r.db).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) GetByCpfCnpj(ctx context.Context, cpfCnpj string) (entities.Client, error) {
	var c entities.Client
	err := dbFromContext(ctx, r.db).Where("cpf_cnpj = ?", cpfCnpj).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]entities.Client, error) {
	var clients []entities.Client
	if err := dbFromContext(ctx, r.db).Order("name").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := dbFromContext(ctx, r.db).Save(&c).Error; err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Delete(&entities.Client{}, id).Error
}
