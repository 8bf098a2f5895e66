package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod records how and when a given amount was (or will be) paid.
// Rows exist standalone through the payments registry and cascade-owned by
// supplies and employees.
type PaymentMethod struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(10,2);not null"`
	Date      time.Time       `json:"date" gorm:"type:date;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
