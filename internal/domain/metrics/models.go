package metrics

import "time"

// DashboardMetrics is the workforce-wide rollup across every employee,
// project and attendance record at call time.
type DashboardMetrics struct {
	TotalWorkforce      int     `json:"totalWorkforce"`
	ActiveProjects      int     `json:"activeProjects"`
	AggregateHours      float64 `json:"aggregateHours"`
	CrossProjectRevenue float64 `json:"crossProjectRevenue"`
	RealTimeProfits     float64 `json:"realTimeProfits"`
	ProductivityIndex   float64 `json:"productivityIndex"`
	UtilizationRate     float64 `json:"utilizationRate"`
	AverageProfitMargin float64 `json:"averageProfitMargin"`
}

// ProjectMetrics is the same rollup restricted to one project's employees
// and their attendance.
type ProjectMetrics struct {
	ProjectID          string  `json:"projectId"`
	EmployeeCount      int     `json:"employeeCount"`
	TotalHours         float64 `json:"totalHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	LaborCost          float64 `json:"laborCost"`
	Revenue            float64 `json:"revenue"`
	Profit             float64 `json:"profit"`
	ProfitMargin       float64 `json:"profitMargin"`
	WorkerEfficiency   float64 `json:"workerEfficiency"`
	AttendanceRate     float64 `json:"attendanceRate"`
	OvertimePercentage float64 `json:"overtimePercentage"`
}

// ProfitTrend is one 7-day bucket of the trend series.
type ProfitTrend struct {
	Label         string    `json:"label"`
	WeekStart     time.Time `json:"weekStart"`
	WeekEnd       time.Time `json:"weekEnd"`
	Revenue       float64   `json:"revenue"`
	Costs         float64   `json:"costs"`
	Profit        float64   `json:"profit"`
	Margin        float64   `json:"margin"`
	ProjectCount  int       `json:"projectCount"`
	EmployeeCount int       `json:"employeeCount"`
}
