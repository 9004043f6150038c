package payroll

import (
	"fmt"
	"strings"
)

// The register format quotes every field, header included, and escapes
// embedded quotes by doubling. Downstream imports rely on that exact shape,
// which is why this is not encoding/csv (it quotes only when required).

var registerHeader = []string{
	"Employee Number", "Name", "Regular Hours", "Overtime Hours",
	"Gross Pay", "GOSI", "Other Deductions", "Net Pay",
	"Client Billing", "Profit",
}

// RegisterCSV renders a payroll run as the downloadable CSV register,
// one row per employee plus a trailing totals row.
func RegisterCSV(result RunResult) string {
	rows := make([][]string, 0, len(result.Items)+1)
	for _, item := range result.Items {
		rows = append(rows, []string{
			item.EmployeeNumber,
			item.Name,
			money(item.RegularHours),
			money(item.OvertimeHours),
			money(item.GrossPay),
			money(item.GosiContribution),
			money(item.OtherDeductions),
			money(item.NetPay),
			money(item.ClientBilling),
			money(item.ProfitGenerated),
		})
	}
	summary := result.Summary
	rows = append(rows, []string{
		"TOTAL",
		fmt.Sprintf("%d employees", summary.EmployeeCount),
		money(summary.TotalHours),
		"",
		money(summary.TotalGrossPay),
		money(summary.TotalGosi),
		money(summary.TotalDeductions),
		money(summary.TotalNetPay),
		money(summary.TotalBilling),
		money(summary.TotalProfit),
	})
	return WriteCSV(registerHeader, rows)
}

// WriteCSV joins a header and rows into CSV text with every field quoted.
func WriteCSV(header []string, rows [][]string) string {
	var b strings.Builder
	writeCSVRow(&b, header)
	for _, row := range rows {
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func money(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
