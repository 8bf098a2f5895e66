package repository

import (
	"context"
	"errors"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventGormRepository persists Event aggregates in Postgres.
type EventGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEventRepository = (*EventGormRepository)(nil)

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

func (r *EventGormRepository) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	if err := dbFromContext(ctx, r.db).Omit("Client").Create(&e).Error; err != nil {
		return entities.Event{}, err
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EventGormRepository) GetByID(ctx context.Context, id uint) (entities.Event, error) {
	var e entities.Event
	err := dbFromContext(ctx, r.db).
		Preload("Client").
		Preload("Supplies.PaymentMethod").
		Preload("Menus.Items").
		Preload("Employees.PaymentMethod").
		First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Event{}, nil
	}
	if err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventGormRepository) List(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	err := dbFromContext(ctx, r.db).
		Preload("Client").
		Preload("Supplies.PaymentMethod").
		Order("date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventGormRepository) ListByClientID(ctx context.Context, clientID uint) ([]entities.Event, error) {
	var events []entities.Event
	err := dbFromContext(ctx, r.db).
		Preload("Supplies.PaymentMethod").
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventGormRepository) Update(ctx context.Context, e entities.Event) (entities.Event, error) {
	err := dbFromContext(ctx, r.db).Omit(clause.Associations).Save(&e).Error
	if err != nil {
		return entities.Event{}, err
	}
	return r.GetByID(ctx, e.ID)
}

// UpdateFinancials writes only the derived money columns, leaving the rest of
// the row untouched.
func (r *EventGormRepository) UpdateFinancials(ctx context.Context, id uint, expenses, profit decimal.Decimal) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"expenses": expenses,
			"profit":   profit,
		}).Error
}

func (r *EventGormRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *EventGormRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Select(clause.Associations).Delete(&entities.Event{ID: id}).Error
}
