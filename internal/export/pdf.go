package export

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"finance-ledger-go/internal/analytics"
	"finance-ledger-go/internal/models"
	"finance-ledger-go/internal/money"
)

// Amounts in PDFs use the ISO currency code rather than the symbol: the
// core PDF fonts are cp1252 and have no glyph for ₹.
func pdfAmount(cur money.Currency, amount float64) string {
	return cur.Code + " " + money.Plain(amount)
}

// SummaryPDF renders a report with the account summary block followed by a
// grid table of the bucketed rows.
func SummaryPDF(w io.Writer, title string, cur money.Currency, summary analytics.Summary, rows []Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated on: "+time.Now().Format("02 Jan 2006"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	summaryLines := []string{
		"Remaining: " + pdfAmount(cur, summary.Remaining),
		"Income: " + pdfAmount(cur, summary.Income),
		"Expenses: " + pdfAmount(cur, summary.Expenses),
		"To Be Credited: " + pdfAmount(cur, summary.ToBeCredit),
		"Salary: " + pdfAmount(cur, summary.Salary),
	}
	if summary.ShowDebt {
		summaryLines = append(summaryLines,
			"Debt: "+pdfAmount(cur, summary.Debt),
			"Monthly Interest: "+pdfAmount(cur, summary.Interest),
		)
	}
	for _, line := range summaryLines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	colWidths := []float64{24, 24, 24, 24, 26, 22, 24, 18}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(15, 23, 42)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range csvHeader {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, r := range rows {
		pdf.SetFillColor(240, 240, 240)
		cells := []string{
			r.PeriodLabel,
			num(r.Investment), num(r.Earnings), num(r.Spending),
			num(r.ToBeCredit), num(r.Salary), num(r.Profit),
			r.ROI,
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.Output(w)
}

// InvoicePDF renders a billing document with its line items and total.
func InvoicePDF(w io.Writer, cur money.Currency, inv models.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		"Invoice #: " + inv.InvoiceNumber,
		"Date: " + inv.Date,
		"Due Date: " + inv.DueDate,
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Bill To")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{inv.ClientName, inv.ClientEmail, inv.ClientAddress} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	headers := []string{"Description", "Quantity", "Rate", "Amount"}
	colWidths := []float64{90, 25, 30, 35}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(15, 23, 42)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range inv.Items {
		pdf.CellFormat(colWidths[0], 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, num(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, pdfAmount(cur, item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, pdfAmount(cur, item.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, pdfAmount(cur, inv.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	if inv.Notes != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
