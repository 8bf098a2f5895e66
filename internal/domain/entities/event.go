package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event statuses are free-form labels; these are the ones the UI knows about.
const (
	EventStatusPendente  = "PENDENTE"
	EventStatusConcluido = "CONCLUIDO"
	EventStatusCancelado = "CANCELADO"
)

// Event is a confirmed, financially tracked engagement, optionally derived
// from an accepted budget.
//
// Expenses is the sum of the values of all supplies currently linked to the
// event and Profit is Amount − Expenses. Both are recomputed on every supply
// mutation and trusted as stored on reads.
type Event struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	ClientID  uint            `json:"client_id" gorm:"not null"`
	Client    Client          `json:"client" gorm:"foreignKey:ClientID"`
	Date      time.Time       `json:"date" gorm:"type:date;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Expenses  decimal.Decimal `json:"expenses" gorm:"type:decimal(10,2);not null"`
	Profit    decimal.Decimal `json:"profit" gorm:"type:decimal(10,2);not null"`
	Status    string          `json:"status" gorm:"size:20"`
	Headcount int             `json:"headcount"`
	Supplies  []Supply        `json:"supplies" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Menus     []Menu          `json:"menus" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Employees []Employee      `json:"employees" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
