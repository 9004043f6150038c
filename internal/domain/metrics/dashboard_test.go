package metrics

import (
	"math/rand"
	"testing"
	"time"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
)

func ptr(s string) *string { return &s }

func day(s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func fixtureEmployees() []core.Employee {
	return []core.Employee{
		{ID: "e1", EmployeeNumber: "EMP-001", Status: core.EmployeeStatusActive, HourlyRate: 30, ActualRate: 50, ProjectID: ptr("p1")},
		{ID: "e2", EmployeeNumber: "EMP-002", Status: core.EmployeeStatusActive, HourlyRate: 20, ActualRate: 35, ProjectID: ptr("p1")},
		{ID: "e3", EmployeeNumber: "EMP-003", Status: core.EmployeeStatusActive, HourlyRate: 25, ActualRate: 40},
		{ID: "e4", EmployeeNumber: "EMP-004", Status: core.EmployeeStatusInactive, HourlyRate: 25, ActualRate: 40, ProjectID: ptr("p2")},
	}
}

func fixtureProjects() []core.Project {
	return []core.Project{
		{ID: "p1", Name: "Site A", Status: core.ProjectStatusActive},
		{ID: "p2", Name: "Site B", Status: core.ProjectStatusHold},
		{ID: "p3", Name: "Site C", Status: core.ProjectStatusCompleted},
	}
}

func fixtureAttendance() []core.AttendanceRecord {
	return []core.AttendanceRecord{
		{ID: "a1", EmployeeID: "e1", Date: day("2026-08-03"), HoursWorked: 8, Overtime: 2},
		{ID: "a2", EmployeeID: "e2", Date: day("2026-08-03"), HoursWorked: 8},
		{ID: "a3", EmployeeID: "e1", Date: day("2026-08-04"), HoursWorked: 8},
		{ID: "a4", EmployeeID: "ghost", Date: day("2026-08-04"), HoursWorked: 10, Overtime: 1},
	}
}

func TestDashboardCounts(t *testing.T) {
	m := Dashboard(fixtureEmployees(), fixtureProjects(), fixtureAttendance(), finance.DefaultPolicy())

	if m.TotalWorkforce != 3 {
		t.Fatalf("expected 3 active employees, got %d", m.TotalWorkforce)
	}
	if m.ActiveProjects != 1 {
		t.Fatalf("expected 1 active project, got %d", m.ActiveProjects)
	}
	// All records count toward hours, including the orphan.
	if m.AggregateHours != 37 {
		t.Fatalf("expected 37 aggregate hours, got %v", m.AggregateHours)
	}
	// 2 of 3 active employees are assigned.
	if m.UtilizationRate != finance.Round2(2.0/3.0*100) {
		t.Fatalf("unexpected utilization %v", m.UtilizationRate)
	}
}

func TestDashboardSkipsOrphanFinancials(t *testing.T) {
	m := Dashboard(fixtureEmployees(), fixtureProjects(), fixtureAttendance(), finance.DefaultPolicy())

	// e1: 8h+2ot@30/50 -> rev 550, cost 330; e2: 8h@20/35 -> rev 280, cost 160;
	// e1: 8h@30/50 -> rev 400, cost 240. Orphan excluded.
	if m.CrossProjectRevenue != 1230 {
		t.Fatalf("expected revenue 1230, got %v", m.CrossProjectRevenue)
	}
	if m.RealTimeProfits != 500 {
		t.Fatalf("expected profit 500, got %v", m.RealTimeProfits)
	}
	if m.AverageProfitMargin != finance.Percent(500, 1230) {
		t.Fatalf("unexpected margin %v", m.AverageProfitMargin)
	}
	if m.ProductivityIndex != finance.Ratio(1230, 37) {
		t.Fatalf("unexpected productivity %v", m.ProductivityIndex)
	}
}

func TestDashboardOrderIndependent(t *testing.T) {
	attendance := fixtureAttendance()
	want := Dashboard(fixtureEmployees(), fixtureProjects(), attendance, finance.DefaultPolicy())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(attendance), func(a, b int) {
			attendance[a], attendance[b] = attendance[b], attendance[a]
		})
		got := Dashboard(fixtureEmployees(), fixtureProjects(), attendance, finance.DefaultPolicy())
		if got != want {
			t.Fatalf("permutation %d changed the result: %+v vs %+v", i, got, want)
		}
	}
}

func TestDashboardEmptyAttendance(t *testing.T) {
	m := Dashboard(fixtureEmployees(), fixtureProjects(), nil, finance.DefaultPolicy())

	if m.TotalWorkforce != 3 {
		t.Fatalf("workforce must not depend on attendance, got %d", m.TotalWorkforce)
	}
	if m.AggregateHours != 0 || m.CrossProjectRevenue != 0 || m.RealTimeProfits != 0 {
		t.Fatalf("expected zero hour/money aggregates, got %+v", m)
	}
	if m.ProductivityIndex != 0 || m.AverageProfitMargin != 0 {
		t.Fatalf("zero denominators must yield 0, got %+v", m)
	}
	if m.UtilizationRate != finance.Round2(2.0/3.0*100) {
		t.Fatalf("utilization comes from assignment only, got %v", m.UtilizationRate)
	}
}

func TestDashboardNoEmployees(t *testing.T) {
	m := Dashboard(nil, nil, nil, finance.DefaultPolicy())
	if m.UtilizationRate != 0 || m.TotalWorkforce != 0 {
		t.Fatalf("expected all-zero dashboard, got %+v", m)
	}
}

func TestProjectMetrics(t *testing.T) {
	policy := finance.DefaultPolicy()
	m := Project("p1", fixtureEmployees(), fixtureAttendance(), policy)

	if m.EmployeeCount != 2 {
		t.Fatalf("expected 2 project employees, got %d", m.EmployeeCount)
	}
	if m.TotalHours != 26 {
		t.Fatalf("expected 26 hours, got %v", m.TotalHours)
	}
	if m.OvertimeHours != 2 {
		t.Fatalf("expected 2 overtime hours, got %v", m.OvertimeHours)
	}
	if m.Revenue != 1230 || m.LaborCost != 730 || m.Profit != 500 {
		t.Fatalf("unexpected money: %+v", m)
	}
	if m.WorkerEfficiency != finance.Ratio(500, 2) {
		t.Fatalf("unexpected efficiency %v", m.WorkerEfficiency)
	}
	// 3 records over 2 employees x 22 expected days.
	if m.AttendanceRate != finance.Percent(3, 44) {
		t.Fatalf("unexpected attendance rate %v", m.AttendanceRate)
	}
	if m.OvertimePercentage != finance.Percent(2, 26) {
		t.Fatalf("unexpected overtime percentage %v", m.OvertimePercentage)
	}
}

func TestProjectMetricsEmptyProject(t *testing.T) {
	m := Project("p9", fixtureEmployees(), fixtureAttendance(), finance.DefaultPolicy())

	if m.EmployeeCount != 0 {
		t.Fatalf("expected no employees, got %d", m.EmployeeCount)
	}
	if m.AttendanceRate != 0 || m.WorkerEfficiency != 0 || m.ProfitMargin != 0 || m.OvertimePercentage != 0 {
		t.Fatalf("zero denominators must yield 0, got %+v", m)
	}
}
