package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// EmployeeGormRepository persists Employee entities in Postgres.
type EmployeeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEmployeeRepository = (*EmployeeGormRepository)(nil)

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	if err := dbFromContext(ctx, r.db).Create(&e).Error; err != nil {
		return entities.Employee{}, err
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeGormRepository) GetByID(ctx context.Context, id uint) (entities.Employee, error) {
	var e entities.Employee
	err := dbFromContext(ctx, r.db).Preload("PaymentMethod").First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Employee{}, nil
	}
	if err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) List(ctx context.Context) ([]entities.Employee, error) {
	var employees []entities.Employee
	if err := dbFromContext(ctx, r.db).Preload("PaymentMethod").Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeGormRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	db := dbFromContext(ctx, r.db)
	// Save's association upsert never touches an existing payment method row,
	// so in-place edits have to be written explicitly.
	if e.PaymentMethod != nil && e.PaymentMethod.ID != 0 {
		if err := db.Save(e.PaymentMethod).Error; err != nil {
			return entities.Employee{}, err
		}
	}
	if err := db.Save(&e).Error; err != nil {
		return entities.Employee{}, err
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeGormRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	var e entities.Employee
	err := db.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := db.Delete(&entities.Employee{}, id).Error; err != nil {
		return err
	}
	// The payment method row is owned by the employee it was created with.
	if e.PaymentMethodID != nil {
		return db.Delete(&entities.PaymentMethod{}, *e.PaymentMethodID).Error
	}
	return nil
}
