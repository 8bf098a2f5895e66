package documents

import (
	"bytes"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestPdfBudgetRenderer_Render(t *testing.T) {
	b := entities.Budget{
		ID:             2,
		Client:         entities.Client{Name: "Maria Silva", CpfCnpj: "12345678900"},
		EventDate:      time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		Headcount:      10,
		PricePerPerson: decimal.NewFromInt(50),
		TotalPrice:     decimal.NewFromInt(500),
		Status:         entities.BudgetStatusPendente,
		GeneratedAt:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Deadline:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Menus: []entities.Menu{
			{Name: "Jantar", Items: []entities.MenuItem{{Name: "Salada", Category: "Entrada"}}},
		},
		Employees: []entities.Employee{
			{Name: "João", Role: "Garçom", Value: decimal.NewFromInt(200)},
		},
	}

	doc, err := NewPdfBudgetRenderer().Render(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", doc[:min(len(doc), 8)])
	}
}
