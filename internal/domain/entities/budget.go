package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
type BudgetStatus string

const (
	BudgetStatusPendente BudgetStatus = "PENDENTE"
	BudgetStatusAceito   BudgetStatus = "ACEITO"
	BudgetStatusRecusado BudgetStatus = "RECUSADO"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusPendente, BudgetStatusAceito, BudgetStatusRecusado:
		return true
	}
	return false
}

// Budget is a priced proposal for a future event, pending client acceptance.
//
// TotalPrice is always PricePerPerson × Headcount and is never settable by
// callers; ComputeTotal restores it before every persist. Menus and Employees
// are owned copies scoped to the budget, not shared with any event.
type Budget struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	ClientID       uint            `json:"client_id" gorm:"not null"`
	Client         Client          `json:"client" gorm:"foreignKey:ClientID"`
	EventDate      time.Time       `json:"event_date" gorm:"type:date;not null"`
	Headcount      int             `json:"headcount" gorm:"not null"`
	PricePerPerson decimal.Decimal `json:"price_per_person" gorm:"type:decimal(10,2);not null"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status         BudgetStatus    `json:"status" gorm:"size:20;not null"`
	GeneratedAt    time.Time       `json:"generated_at" gorm:"type:date;not null"`
	Deadline       time.Time       `json:"deadline" gorm:"type:date;not null"`
	Menus          []Menu          `json:"menus" gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
	Employees      []Employee      `json:"employees" gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ComputeTotal recomputes TotalPrice from the per-person price and headcount.
func (b *Budget) ComputeTotal() {
	b.TotalPrice = b.PricePerPerson.Mul(decimal.NewFromInt(int64(b.Headcount)))
}
