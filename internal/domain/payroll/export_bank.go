package payroll

import (
	"fmt"
	"strings"
	"time"
)

const bankLine = "----------------------------------------------------------------------"

// BankTransferFile renders a payroll run in the fixed plain-text layout the
// bank import expects: a labeled header section, one line per employee, and
// a trailing summary block.
func BankTransferFile(result RunResult, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("MANPOWER PAYROLL - BANK TRANSFER FILE\n")
	b.WriteString(bankLine + "\n")
	fmt.Fprintf(&b, "Period    : %s to %s\n", periodLabel(result.PeriodStart), periodLabel(result.PeriodEnd))
	fmt.Fprintf(&b, "Generated : %s\n", generatedAt.Format("2006-01-02 15:04"))
	b.WriteString(bankLine + "\n")

	for _, item := range result.Items {
		fmt.Fprintf(&b, "%-12s %-30s NET %12.2f\n", item.EmployeeNumber, item.Name, item.NetPay)
	}

	b.WriteString(bankLine + "\n")
	summary := result.Summary
	fmt.Fprintf(&b, "Employees : %d\n", summary.EmployeeCount)
	fmt.Fprintf(&b, "Total Net : %.2f\n", summary.TotalNetPay)
	fmt.Fprintf(&b, "Total GOSI: %.2f\n", summary.TotalGosi)
	b.WriteString(bankLine + "\n")
	return b.String()
}

// PayslipText renders one employee's payslip as labeled plain text.
func PayslipText(item Calculation, periodStart, periodEnd time.Time) string {
	var b strings.Builder

	b.WriteString("PAYSLIP\n")
	b.WriteString(bankLine + "\n")
	fmt.Fprintf(&b, "Employee  : %s (%s)\n", item.Name, item.EmployeeNumber)
	fmt.Fprintf(&b, "Period    : %s to %s\n", periodLabel(periodStart), periodLabel(periodEnd))
	b.WriteString(bankLine + "\n")
	fmt.Fprintf(&b, "Regular Hours    : %10.2f\n", item.RegularHours)
	fmt.Fprintf(&b, "Overtime Hours   : %10.2f\n", item.OvertimeHours)
	fmt.Fprintf(&b, "Gross Pay        : %10.2f\n", item.GrossPay)
	fmt.Fprintf(&b, "GOSI Contribution: %10.2f\n", item.GosiContribution)
	fmt.Fprintf(&b, "Other Deductions : %10.2f\n", item.OtherDeductions)
	b.WriteString(bankLine + "\n")
	fmt.Fprintf(&b, "NET PAY          : %10.2f\n", item.NetPay)
	b.WriteString(bankLine + "\n")
	return b.String()
}

func periodLabel(t time.Time) string {
	if t.IsZero() {
		return "open"
	}
	return t.Format("2006-01-02")
}
