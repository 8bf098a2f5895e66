package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SupplyResponse struct {
	ID              uint                   `json:"id"`
	Nome            string                 `json:"nome"`
	Valor           decimal.Decimal        `json:"valor"`
	EventoId        uint                   `json:"eventoId"`
	MetodoPagamento *PaymentMethodResponse `json:"metodoPagamento,omitempty"`
}

func FromSupply(s entities.Supply) SupplyResponse {
	out := SupplyResponse{
		ID:       s.ID,
		Nome:     s.Name,
		Valor:    s.Value,
		EventoId: s.EventID,
	}
	if s.PaymentMethod != nil {
		pm := FromPaymentMethod(*s.PaymentMethod)
		out.MetodoPagamento = &pm
	}
	return out
}
