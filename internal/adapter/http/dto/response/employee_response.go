package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID              uint                   `json:"id"`
	Nome            string                 `json:"nome"`
	Funcao          string                 `json:"funcao"`
	Valor           decimal.Decimal        `json:"valor"`
	MetodoPagamento *PaymentMethodResponse `json:"metodoPagamento,omitempty"`
	EventoId        *uint                  `json:"eventoId,omitempty"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	out := EmployeeResponse{
		ID:       e.ID,
		Nome:     e.Name,
		Funcao:   e.Role,
		Valor:    e.Value,
		EventoId: e.EventID,
	}
	if e.PaymentMethod != nil {
		pm := FromPaymentMethod(*e.PaymentMethod)
		out.MetodoPagamento = &pm
	}
	return out
}
