package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BudgetResponse struct {
	ID                uint               `json:"id"`
	Cliente           ClientResponse     `json:"cliente"`
	DataDoEvento      string             `json:"dataDoEvento"`
	QuantidadePessoas int                `json:"quantidadePessoas"`
	ValorPorPessoa    decimal.Decimal    `json:"valorPorPessoa"`
	ValorTotal        decimal.Decimal    `json:"valorTotal"`
	Status            string             `json:"status"`
	DataGeracao       string             `json:"dataGeracao"`
	DataLimite        string             `json:"dataLimite"`
	Cardapios         []MenuResponse     `json:"cardapios"`
	Funcionarios      []EmployeeResponse `json:"funcionarios"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	out := BudgetResponse{
		ID:                b.ID,
		Cliente:           FromClient(b.Client),
		QuantidadePessoas: b.Headcount,
		ValorPorPessoa:    b.PricePerPerson,
		ValorTotal:        b.TotalPrice,
		Status:            string(b.Status),
		Cardapios:         []MenuResponse{},
		Funcionarios:      []EmployeeResponse{},
	}
	if !b.EventDate.IsZero() {
		out.DataDoEvento = b.EventDate.Format(dateLayout)
	}
	if !b.GeneratedAt.IsZero() {
		out.DataGeracao = b.GeneratedAt.Format(dateLayout)
	}
	if !b.Deadline.IsZero() {
		out.DataLimite = b.Deadline.Format(dateLayout)
	}
	for _, m := range b.Menus {
		out.Cardapios = append(out.Cardapios, FromMenu(m))
	}
	for _, e := range b.Employees {
		out.Funcionarios = append(out.Funcionarios, FromEmployee(e))
	}
	return out
}
