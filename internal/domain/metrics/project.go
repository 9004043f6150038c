package metrics

import (
	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

// Project computes the rollup for one project: joins restrict to employees
// assigned to it and their attendance. Attendance rate measures actual
// records against the expected working days per employee from the policy.
func Project(projectID string, employees []core.Employee, attendance []core.AttendanceRecord, policy finance.RatePolicy) ProjectMetrics {
	m := ProjectMetrics{ProjectID: projectID}

	members := make(map[string]*core.Employee)
	for i := range employees {
		emp := &employees[i]
		if emp.ProjectID == nil || *emp.ProjectID != projectID {
			continue
		}
		members[emp.ID] = emp
		m.EmployeeCount++
	}

	var laborCost, revenue, recordCount float64
	for i := range attendance {
		record := &attendance[i]
		emp, ok := members[record.EmployeeID]
		if !ok {
			continue
		}
		recordCount++
		m.TotalHours += record.TotalHours()
		m.OvertimeHours += record.Overtime

		calc := finance.Calculate(record.HoursWorked, record.Overtime, emp.HourlyRate, emp.ActualRate, policy)
		laborCost += calc.LaborCost
		revenue += calc.Revenue
	}

	m.LaborCost = finance.Round2(laborCost)
	m.Revenue = finance.Round2(revenue)
	m.Profit = finance.Round2(m.Revenue - m.LaborCost)
	m.ProfitMargin = finance.Percent(m.Profit, m.Revenue)
	m.WorkerEfficiency = finance.Ratio(m.Profit, float64(m.EmployeeCount))
	m.AttendanceRate = finance.Percent(recordCount, float64(m.EmployeeCount)*policy.ExpectedWorkingDays)
	m.OvertimePercentage = finance.Percent(m.OvertimeHours, m.TotalHours)
	return m
}
