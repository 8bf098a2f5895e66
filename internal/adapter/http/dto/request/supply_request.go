package request

import (
	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/shopspring/decimal"
)

type SupplyRequest struct {
	Nome            string                `json:"nome" binding:"required"`
	Valor           decimal.Decimal       `json:"valor" binding:"required"`
	EventoId        uint                  `json:"eventoId" binding:"required"`
	MetodoPagamento *PaymentMethodRequest `json:"metodoPagamento"`
}

func (r SupplyRequest) ToInput() (usecase.SupplyInput, error) {
	in := usecase.SupplyInput{
		Name:    r.Nome,
		Value:   r.Valor,
		EventID: r.EventoId,
	}
	if r.MetodoPagamento != nil {
		pm, err := r.MetodoPagamento.ToInput()
		if err != nil {
			return usecase.SupplyInput{}, err
		}
		in.PaymentMethod = &pm
	}
	return in, nil
}
