package request

import (
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/shopspring/decimal"
)

type EmployeeRequest struct {
	Nome            string                `json:"nome" binding:"required"`
	Funcao          string                `json:"funcao"`
	Valor           decimal.Decimal       `json:"valor"`
	MetodoPagamento *PaymentMethodRequest `json:"metodoPagamento"`
	EventoId        *uint                 `json:"eventoId"`
}

func (r EmployeeRequest) ToInput() (usecase.EmployeeInput, error) {
	in := usecase.EmployeeInput{
		Name:    r.Nome,
		Role:    r.Funcao,
		Value:   r.Valor,
		EventID: r.EventoId,
	}
	if r.MetodoPagamento != nil {
		pm, err := r.MetodoPagamento.ToInput()
		if err != nil {
			return usecase.EmployeeInput{}, err
		}
		in.PaymentMethod = &pm
	}
	return in, nil
}

// ToEntity builds the employee row embedded in budget payloads.
func (r EmployeeRequest) ToEntity() (entities.Employee, error) {
	e := entities.Employee{
		Name:  r.Nome,
		Role:  r.Funcao,
		Value: r.Valor,
	}
	if r.MetodoPagamento != nil {
		pm := entities.PaymentMethod{
			Name:  r.MetodoPagamento.Nome,
			Value: r.MetodoPagamento.Valor,
		}
		if r.MetodoPagamento.Data != "" {
			date, err := time.Parse(dateLayout, r.MetodoPagamento.Data)
			if err != nil {
				return entities.Employee{}, err
			}
			pm.Date = date
		}
		e.PaymentMethod = &pm
	}
	return e, nil
}
