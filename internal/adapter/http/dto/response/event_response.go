package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EventResponse struct {
	ID                uint             `json:"id"`
	Nome              string           `json:"nome"`
	Cliente           ClientResponse   `json:"cliente"`
	Data              string           `json:"data"`
	Valor             decimal.Decimal  `json:"valor"`
	Gastos            decimal.Decimal  `json:"gastos"`
	Lucro             decimal.Decimal  `json:"lucro"`
	Status            string           `json:"status"`
	QuantidadePessoas int              `json:"quantidadePessoas"`
	Insumos           []SupplyResponse `json:"insumos"`
}

func FromEvent(e entities.Event) EventResponse {
	out := EventResponse{
		ID:                e.ID,
		Nome:              e.Name,
		Cliente:           FromClient(e.Client),
		Valor:             e.Amount,
		Gastos:            e.Expenses,
		Lucro:             e.Profit,
		Status:            e.Status,
		QuantidadePessoas: e.Headcount,
		Insumos:           []SupplyResponse{},
	}
	if !e.Date.IsZero() {
		out.Data = e.Date.Format(dateLayout)
	}
	for _, s := range e.Supplies {
		out.Insumos = append(out.Insumos, FromSupply(s))
	}
	return out
}
