package request

import (
	"time"

	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/shopspring/decimal"
)

type BudgetRequest struct {
	Cliente           ClientRequest     `json:"cliente" binding:"required"`
	DataDoEvento      string            `json:"dataDoEvento" binding:"required"`
	QuantidadePessoas int               `json:"quantidadePessoas" binding:"required"`
	ValorPorPessoa    decimal.Decimal   `json:"valorPorPessoa" binding:"required"`
	DataLimite        string            `json:"dataLimite" binding:"required"`
	Cardapios         []MenuRequest     `json:"cardapios"`
	Funcionarios      []EmployeeRequest `json:"funcionarios"`
}

type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r BudgetRequest) ToInput() (usecase.CreateBudgetInput, error) {
	eventDate, err := time.Parse(dateLayout, r.DataDoEvento)
	if err != nil {
		return usecase.CreateBudgetInput{}, err
	}
	deadline, err := time.Parse(dateLayout, r.DataLimite)
	if err != nil {
		return usecase.CreateBudgetInput{}, err
	}

	in := usecase.CreateBudgetInput{
		Client:         r.Cliente.ToInput(),
		EventDate:      eventDate,
		Deadline:       deadline,
		Headcount:      r.QuantidadePessoas,
		PricePerPerson: r.ValorPorPessoa,
	}
	for _, m := range r.Cardapios {
		in.Menus = append(in.Menus, m.ToEntity())
	}
	for _, e := range r.Funcionarios {
		emp, err := e.ToEntity()
		if err != nil {
			return usecase.CreateBudgetInput{}, err
		}
		in.Employees = append(in.Employees, emp)
	}
	return in, nil
}
