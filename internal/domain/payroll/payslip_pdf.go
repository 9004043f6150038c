package payroll

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WritePayslipPDF renders one employee's payslip as an A4 PDF.
func WritePayslipPDF(w io.Writer, item Calculation, periodStart, periodEnd time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", item.Name, item.EmployeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", periodLabel(periodStart), periodLabel(periodEnd)))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Regular Hours: %.2f", item.RegularHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime Hours: %.2f", item.OvertimeHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross Pay: %.2f SAR", item.GrossPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("GOSI Contribution: %.2f SAR", item.GosiContribution))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Other Deductions: %.2f SAR", item.OtherDeductions))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %.2f SAR", item.NetPay))
	return pdf.Output(w)
}
