package request

import (
	"time"

	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates across the API.
const dateLayout = "2006-01-02"

type PaymentMethodRequest struct {
	Nome  string          `json:"nome" binding:"required"`
	Valor decimal.Decimal `json:"valor"`
	Data  string          `json:"data"`
}

func (r PaymentMethodRequest) ToInput() (usecase.PaymentMethodInput, error) {
	in := usecase.PaymentMethodInput{
		Name:  r.Nome,
		Value: r.Valor,
	}
	if r.Data != "" {
		d, err := time.Parse(dateLayout, r.Data)
		if err != nil {
			return usecase.PaymentMethodInput{}, err
		}
		in.Date = d
	}
	return in, nil
}
