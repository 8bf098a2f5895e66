package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supply (insumo) is a purchased item attributed to one event's expenses.
//
// The payment method row is cascade-owned: it is created, updated and deleted
// together with the supply.
type Supply struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"size:100;not null"`
	Value           decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	EventID         uint            `json:"event_id" gorm:"not null"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	PaymentMethod   *PaymentMethod  `json:"payment_method" gorm:"foreignKey:PaymentMethodID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
