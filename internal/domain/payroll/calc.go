package payroll

import (
	"time"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

// ForEmployee computes one employee's payroll from the attendance slice.
// Records belonging to other employees are ignored, so callers may pass the
// whole period's attendance unfiltered.
func ForEmployee(emp core.Employee, attendance []core.AttendanceRecord, policy finance.RatePolicy) Calculation {
	var regular, overtime float64
	for i := range attendance {
		if attendance[i].EmployeeID != emp.ID {
			continue
		}
		regular += attendance[i].HoursWorked
		overtime += attendance[i].Overtime
	}

	fin := finance.Calculate(regular, overtime, emp.HourlyRate, emp.ActualRate, policy)
	gross := fin.LaborCost
	gosi := finance.Round2(gross * policy.GosiRate)
	deductions := finance.Round2(gross * policy.DeductionRate)

	return Calculation{
		EmployeeID:       emp.ID,
		EmployeeNumber:   emp.EmployeeNumber,
		Name:             emp.Name,
		RegularHours:     regular,
		OvertimeHours:    overtime,
		GrossPay:         gross,
		GosiContribution: gosi,
		OtherDeductions:  deductions,
		NetPay:           finance.Round2(gross - gosi - deductions),
		ClientBilling:    fin.Revenue,
		ProfitGenerated:  fin.Profit,
	}
}

// Run computes payroll for every given employee over [from, to] and
// aggregates the batch summary. Zero from/to bounds mean unbounded.
func Run(employees []core.Employee, attendance []core.AttendanceRecord, from, to time.Time, policy finance.RatePolicy) RunResult {
	var window []core.AttendanceRecord
	for i := range attendance {
		if !from.IsZero() && attendance[i].Date.Before(from) {
			continue
		}
		if !to.IsZero() && attendance[i].Date.After(to) {
			continue
		}
		window = append(window, attendance[i])
	}

	result := RunResult{PeriodStart: from, PeriodEnd: to}
	var hours, gross, gosi, deductions, net, billing, profit float64
	for i := range employees {
		item := ForEmployee(employees[i], window, policy)
		result.Items = append(result.Items, item)

		hours += item.RegularHours + item.OvertimeHours
		gross += item.GrossPay
		gosi += item.GosiContribution
		deductions += item.OtherDeductions
		net += item.NetPay
		billing += item.ClientBilling
		profit += item.ProfitGenerated
	}

	result.Summary = Summary{
		EmployeeCount:   len(result.Items),
		TotalHours:      hours,
		TotalGrossPay:   finance.Round2(gross),
		TotalGosi:       finance.Round2(gosi),
		TotalDeductions: finance.Round2(deductions),
		TotalNetPay:     finance.Round2(net),
		TotalBilling:    finance.Round2(billing),
		TotalProfit:     finance.Round2(profit),
		ProfitMargin:    finance.Percent(profit, billing),
	}
	return result
}
