package request

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBudgetRequest_ToInput(t *testing.T) {
	r := BudgetRequest{
		Cliente:           ClientRequest{Nome: "Maria Silva", CpfCnpj: "12345678900"},
		DataDoEvento:      "2026-10-18",
		QuantidadePessoas: 10,
		ValorPorPessoa:    decimal.NewFromInt(50),
		DataLimite:        "2026-10-01",
		Cardapios:         []MenuRequest{{Nome: "Jantar", Itens: []MenuItemRequest{{Nome: "Salada", Categoria: "Entrada"}}}},
		Funcionarios:      []EmployeeRequest{{Nome: "João", Funcao: "Garçom", Valor: decimal.NewFromInt(200)}},
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Client.Name != "Maria Silva" || in.Headcount != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.EventDate.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected event date: %v", in.EventDate)
	}
	if !in.Deadline.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected deadline: %v", in.Deadline)
	}
	if len(in.Menus) != 1 || len(in.Menus[0].Items) != 1 {
		t.Fatalf("unexpected menus: %+v", in.Menus)
	}
	if len(in.Employees) != 1 || in.Employees[0].Role != "Garçom" {
		t.Fatalf("unexpected employees: %+v", in.Employees)
	}
}

func TestBudgetRequest_ToInputRejectsBadDates(t *testing.T) {
	r := BudgetRequest{
		Cliente:           ClientRequest{Nome: "Maria Silva", CpfCnpj: "12345678900"},
		DataDoEvento:      "18/10/2026",
		QuantidadePessoas: 10,
		ValorPorPessoa:    decimal.NewFromInt(50),
		DataLimite:        "2026-10-01",
	}
	if _, err := r.ToInput(); err == nil {
		t.Fatal("expected an error for the event date")
	}

	r.DataDoEvento = "2026-10-18"
	r.DataLimite = "01-10-2026"
	if _, err := r.ToInput(); err == nil {
		t.Fatal("expected an error for the deadline")
	}

	r.DataLimite = "2026-10-01"
	r.Funcionarios = []EmployeeRequest{{
		Nome:            "João",
		Funcao:          "Garçom",
		MetodoPagamento: &PaymentMethodRequest{Nome: "Pix", Data: "18/10/2026"},
	}}
	if _, err := r.ToInput(); err == nil {
		t.Fatal("expected an error for the payment method date")
	}
}

func TestEmployeeRequest_ToEntity(t *testing.T) {
	r := EmployeeRequest{
		Nome:            "João",
		Funcao:          "Garçom",
		Valor:           decimal.NewFromInt(200),
		MetodoPagamento: &PaymentMethodRequest{Nome: "Pix", Valor: decimal.NewFromInt(200), Data: "2026-10-18"},
	}

	e, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.PaymentMethod == nil || !e.PaymentMethod.Date.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected payment method: %+v", e.PaymentMethod)
	}

	r.MetodoPagamento.Data = "18/10/2026"
	if _, err := r.ToEntity(); err == nil {
		t.Fatal("expected an error for the malformed date")
	}

	r.MetodoPagamento.Data = ""
	e, err = r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.PaymentMethod.Date.IsZero() {
		t.Fatalf("expected zero date, got %v", e.PaymentMethod.Date)
	}
}
