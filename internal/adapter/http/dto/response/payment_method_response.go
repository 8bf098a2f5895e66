package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates across the API.
const dateLayout = "2006-01-02"

type PaymentMethodResponse struct {
	ID    uint            `json:"id"`
	Nome  string          `json:"nome"`
	Valor decimal.Decimal `json:"valor"`
	Data  string          `json:"data"`
}

func FromPaymentMethod(p entities.PaymentMethod) PaymentMethodResponse {
	out := PaymentMethodResponse{
		ID:    p.ID,
		Nome:  p.Name,
		Valor: p.Value,
	}
	if !p.Date.IsZero() {
		out.Data = p.Date.Format(dateLayout)
	}
	return out
}
