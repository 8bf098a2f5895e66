package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee (funcionário) is a staff record, optionally scoped to a budget
// or event.
type Employee struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"size:100;not null"`
	Role            string          `json:"role" gorm:"size:100;not null"`
	Value           decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	PaymentMethod   *PaymentMethod  `json:"payment_method" gorm:"foreignKey:PaymentMethodID"`
	BudgetID        *uint           `json:"budget_id"`
	EventID         *uint           `json:"event_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Copy returns a detached duplicate of the employee, so an event derived from
// a budget owns its own rows instead of sharing the budget's.
func (e Employee) Copy() Employee {
	return Employee{
		Name:  e.Name,
		Role:  e.Role,
		Value: e.Value,
	}
}
