package metrics

import (
	"fmt"
	"time"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

// DefaultTrendWeeks is the window count when the caller does not choose one.
const DefaultTrendWeeks = 5

// ProfitTrends produces exactly `weeks` sequential 7-day buckets ending at
// `now`, oldest first, labeled "Week 1".."Week N". A record lands in the
// bucket whose (start, end] range contains its date. Distinct counts cover
// employees with records in the window and the projects those employees are
// assigned to.
func ProfitTrends(employees []core.Employee, attendance []core.AttendanceRecord, weeks int, now time.Time, policy finance.RatePolicy) []ProfitTrend {
	if weeks <= 0 {
		weeks = DefaultTrendWeeks
	}
	byID := employeeIndex(employees)

	trends := make([]ProfitTrend, 0, weeks)
	for i := 0; i < weeks; i++ {
		end := now.AddDate(0, 0, -7*(weeks-1-i))
		start := end.AddDate(0, 0, -7)

		trend := ProfitTrend{
			Label:     fmt.Sprintf("Week %d", i+1),
			WeekStart: start,
			WeekEnd:   end,
		}

		var revenue, costs float64
		seenEmployees := make(map[string]struct{})
		seenProjects := make(map[string]struct{})
		for j := range attendance {
			record := &attendance[j]
			if !record.Date.After(start) || record.Date.After(end) {
				continue
			}
			emp, ok := byID[record.EmployeeID]
			if !ok {
				continue
			}
			calc := finance.Calculate(record.HoursWorked, record.Overtime, emp.HourlyRate, emp.ActualRate, policy)
			revenue += calc.Revenue
			costs += calc.LaborCost

			seenEmployees[emp.ID] = struct{}{}
			if emp.Assigned() {
				seenProjects[*emp.ProjectID] = struct{}{}
			}
		}

		trend.Revenue = finance.Round2(revenue)
		trend.Costs = finance.Round2(costs)
		trend.Profit = finance.Round2(trend.Revenue - trend.Costs)
		trend.Margin = finance.Percent(trend.Profit, trend.Revenue)
		trend.EmployeeCount = len(seenEmployees)
		trend.ProjectCount = len(seenProjects)
		trends = append(trends, trend)
	}
	return trends
}
