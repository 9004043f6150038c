package core

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on_leave"

	ProjectStatusActive    = "active"
	ProjectStatusHold      = "hold"
	ProjectStatusCompleted = "completed"

	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Document is an employee credential (iqama, certificate, medical card) with
// an expiry date that drives compliance alerts.
type Document struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Number string    `json:"number,omitempty"`
	Expiry time.Time `json:"expiry"`
}

// Employee carries two rates: HourlyRate is the cost side (paid to the
// employee), ActualRate is the billing side (charged to the client). An
// assignment is only profitable when ActualRate exceeds HourlyRate; that is
// surfaced as a warning, never enforced.
type Employee struct {
	ID                string     `json:"id"`
	EmployeeNumber    string     `json:"employeeNumber"`
	Name              string     `json:"name"`
	NameAr            string     `json:"nameAr,omitempty"`
	Trade             string     `json:"trade"`
	Nationality       string     `json:"nationality"`
	Status            string     `json:"status"`
	HourlyRate        float64    `json:"hourlyRate"`
	ActualRate        float64    `json:"actualRate"`
	PerformanceRating float64    `json:"performanceRating"`
	ProjectID         *string    `json:"projectId,omitempty"`
	Skills            []string   `json:"skills,omitempty"`
	Documents         []Document `json:"documents,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Assigned reports whether the employee is attached to a project.
func (e *Employee) Assigned() bool {
	return e.ProjectID != nil && *e.ProjectID != ""
}

// ProfitableRates reports whether the billing rate covers the cost rate.
func (e *Employee) ProfitableRates() bool {
	return e.ActualRate > e.HourlyRate
}

type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Note      string    `json:"note,omitempty"`
}

// Project is a manpower deployment for a client. Projects are never hard
// deleted; lifecycle moves through the status field, every mutation stamps
// UpdatedAt, and a status change appends to StatusHistory.
type Project struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Client        string         `json:"client"`
	Location      string         `json:"location,omitempty"`
	Status        string         `json:"status"`
	StartDate     *time.Time     `json:"startDate,omitempty"`
	EndDate       *time.Time     `json:"endDate,omitempty"`
	Budget        float64        `json:"budget"`
	Progress      float64        `json:"progress"`
	RiskLevel     string         `json:"riskLevel"`
	ProfitMargin  float64        `json:"profitMargin"`
	StatusHistory []StatusChange `json:"statusHistory,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// AttendanceRecord is one employee's worked time on one calendar day.
// EmployeeID is a reference, not ownership: aggregations tolerate records
// whose employee has since been removed.
type AttendanceRecord struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Date         time.Time `json:"date"`
	HoursWorked  float64   `json:"hoursWorked"`
	Overtime     float64   `json:"overtime"`
	BreakMinutes int       `json:"breakMinutes,omitempty"`
	LateMinutes  int       `json:"lateMinutes,omitempty"`
	EarlyMinutes int       `json:"earlyMinutes,omitempty"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TotalHours is regular plus overtime hours for the day.
func (r *AttendanceRecord) TotalHours() float64 {
	return r.HoursWorked + r.Overtime
}

// EmployeeUpdate is a partial update; nil fields are left unchanged.
// ClearProject unassigns the employee (a nil ProjectID alone means "no
// change", not "remove assignment").
type EmployeeUpdate struct {
	Name              *string     `json:"name,omitempty"`
	NameAr            *string     `json:"nameAr,omitempty"`
	Trade             *string     `json:"trade,omitempty"`
	Nationality       *string     `json:"nationality,omitempty"`
	Status            *string     `json:"status,omitempty"`
	HourlyRate        *float64    `json:"hourlyRate,omitempty"`
	ActualRate        *float64    `json:"actualRate,omitempty"`
	PerformanceRating *float64    `json:"performanceRating,omitempty"`
	ProjectID         *string     `json:"projectId,omitempty"`
	ClearProject      bool        `json:"clearProject,omitempty"`
	Skills            *[]string   `json:"skills,omitempty"`
	Documents         *[]Document `json:"documents,omitempty"`
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Name         *string    `json:"name,omitempty"`
	Client       *string    `json:"client,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Status       *string    `json:"status,omitempty"`
	StatusNote   string     `json:"statusNote,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Budget       *float64   `json:"budget,omitempty"`
	Progress     *float64   `json:"progress,omitempty"`
	RiskLevel    *string    `json:"riskLevel,omitempty"`
	ProfitMargin *float64   `json:"profitMargin,omitempty"`
}
