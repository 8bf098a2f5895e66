package entities

import "time"

// Client is a customer that budgets and events are billed against.
//
// CpfCnpj is the Brazilian tax id and is unique across the registry; budgets
// that reference an unknown tax id create the client on the fly.
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;not null"`
	CpfCnpj   string    `json:"cpf_cnpj" gorm:"size:20;uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
