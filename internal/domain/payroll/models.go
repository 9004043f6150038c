package payroll

import "time"

// Calculation is one employee's payroll for a period. GrossPay is the labor
// cost of the worked hours; GOSI and other deductions come off it, while
// ClientBilling and ProfitGenerated report the revenue side of the same
// hours.
type Calculation struct {
	EmployeeID       string  `json:"employeeId"`
	EmployeeNumber   string  `json:"employeeNumber"`
	Name             string  `json:"name"`
	RegularHours     float64 `json:"regularHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	GrossPay         float64 `json:"grossPay"`
	GosiContribution float64 `json:"gosiContribution"`
	OtherDeductions  float64 `json:"otherDeductions"`
	NetPay           float64 `json:"netPay"`
	ClientBilling    float64 `json:"clientBilling"`
	ProfitGenerated  float64 `json:"profitGenerated"`
}

// Summary aggregates a batch run. Totals are the rounded sums of the item
// values, so summing items reproduces the summary at 2dp precision.
type Summary struct {
	EmployeeCount   int     `json:"employeeCount"`
	TotalHours      float64 `json:"totalHours"`
	TotalGrossPay   float64 `json:"totalGrossPay"`
	TotalGosi       float64 `json:"totalGosi"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNetPay     float64 `json:"totalNetPay"`
	TotalBilling    float64 `json:"totalBilling"`
	TotalProfit     float64 `json:"totalProfit"`
	ProfitMargin    float64 `json:"profitMargin"`
}

// RunResult is a full payroll run for a period.
type RunResult struct {
	PeriodStart time.Time     `json:"periodStart"`
	PeriodEnd   time.Time     `json:"periodEnd"`
	Items       []Calculation `json:"items"`
	Summary     Summary       `json:"summary"`
}
