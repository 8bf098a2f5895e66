package documents

import (
	"bytes"
	"fmt"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "02/01/2006"

// PdfBudgetRenderer renders a budget as a printable PDF proposal.
type PdfBudgetRenderer struct{}

var _ usecase.IBudgetRenderer = (*PdfBudgetRenderer)(nil)

func NewPdfBudgetRenderer() *PdfBudgetRenderer {
	return &PdfBudgetRenderer{}
}

func (r *PdfBudgetRenderer) Render(b entities.Budget) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("Orçamento #%d", b.ID)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}

	line("Cliente:", b.Client.Name)
	if b.Client.CpfCnpj != "" {
		line("CPF/CNPJ:", b.Client.CpfCnpj)
	}
	line("Data do evento:", b.EventDate.Format(dateLayout))
	line("Pessoas:", fmt.Sprintf("%d", b.Headcount))
	line("Valor por pessoa:", "R$ "+b.PricePerPerson.StringFixed(2))
	line("Valor total:", "R$ "+b.TotalPrice.StringFixed(2))
	line("Válido até:", b.Deadline.Format(dateLayout))
	pdf.Ln(4)

	for _, menu := range b.Menus {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr("Cardápio: "+menu.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range menu.Items {
			label := item.Name
			if item.Category != "" {
				label = item.Category + " - " + item.Name
			}
			pdf.CellFormat(0, 6, tr("  "+label), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	if len(b.Employees) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr("Equipe"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, e := range b.Employees {
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("  %s (%s)", e.Name, e.Role)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr("Gerado em "+b.GeneratedAt.Format(dateLayout)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
