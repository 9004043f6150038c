package metrics

import (
	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

// Dashboard rolls the full snapshot up into workforce-wide metrics. Records
// whose employee no longer exists still count toward aggregate hours but are
// skipped for the financial joins; historical data must never break
// current-period reporting.
func Dashboard(employees []core.Employee, projects []core.Project, attendance []core.AttendanceRecord, policy finance.RatePolicy) DashboardMetrics {
	byID := employeeIndex(employees)

	var m DashboardMetrics
	var assigned int
	for i := range employees {
		if employees[i].Status != core.EmployeeStatusActive {
			continue
		}
		m.TotalWorkforce++
		if employees[i].Assigned() {
			assigned++
		}
	}
	for i := range projects {
		if projects[i].Status == core.ProjectStatusActive {
			m.ActiveProjects++
		}
	}

	var revenue, profit float64
	for i := range attendance {
		record := &attendance[i]
		m.AggregateHours += record.TotalHours()

		emp, ok := byID[record.EmployeeID]
		if !ok {
			continue
		}
		calc := finance.Calculate(record.HoursWorked, record.Overtime, emp.HourlyRate, emp.ActualRate, policy)
		revenue += calc.Revenue
		profit += calc.Profit
	}

	m.CrossProjectRevenue = finance.Round2(revenue)
	m.RealTimeProfits = finance.Round2(profit)
	m.ProductivityIndex = finance.Ratio(m.CrossProjectRevenue, m.AggregateHours)
	m.UtilizationRate = finance.Percent(float64(assigned), float64(m.TotalWorkforce))
	m.AverageProfitMargin = finance.Percent(m.RealTimeProfits, m.CrossProjectRevenue)
	return m
}

func employeeIndex(employees []core.Employee) map[string]*core.Employee {
	byID := make(map[string]*core.Employee, len(employees))
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
	}
	return byID
}
