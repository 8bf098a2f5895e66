package request

import (
	"time"

	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/shopspring/decimal"
)

type EventRequest struct {
	Nome              string          `json:"nome" binding:"required"`
	ClienteId         uint            `json:"clienteId" binding:"required"`
	Data              string          `json:"data" binding:"required"`
	Valor             decimal.Decimal `json:"valor"`
	Status            string          `json:"status"`
	QuantidadePessoas int             `json:"quantidadePessoas"`
}

type EventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r EventRequest) ToInput() (usecase.CreateEventInput, error) {
	date, err := time.Parse(dateLayout, r.Data)
	if err != nil {
		return usecase.CreateEventInput{}, err
	}
	return usecase.CreateEventInput{
		Name:      r.Nome,
		ClientID:  r.ClienteId,
		Date:      date,
		Amount:    r.Valor,
		Status:    r.Status,
		Headcount: r.QuantidadePessoas,
	}, nil
}
