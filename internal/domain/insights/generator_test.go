package insights

import (
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

// healthyState builds a snapshot where no dashboard-level rule fires:
// everyone assigned and active, fat margins, modest productivity.
func healthyState() ([]core.Employee, []core.Project, []core.AttendanceRecord) {
	employees := []core.Employee{
		{ID: "e1", Name: "Ahmed", Status: core.EmployeeStatusActive, HourlyRate: 10, ActualRate: 20, ProjectID: ptr("p1")},
		{ID: "e2", Name: "Omar", Status: core.EmployeeStatusActive, HourlyRate: 10, ActualRate: 20, ProjectID: ptr("p1")},
	}
	projects := []core.Project{
		{ID: "p1", Name: "Site A", Status: core.ProjectStatusActive, ProfitMargin: 20},
	}
	// 40 records for 2 employees x 22 expected days -> 90.9% attendance.
	var attendance []core.AttendanceRecord
	base := day("2026-08-01")
	for i := 0; i < 20; i++ {
		date := base.AddDate(0, 0, i)
		attendance = append(attendance,
			core.AttendanceRecord{ID: "a1-" + date.Format("02"), EmployeeID: "e1", Date: date, HoursWorked: 8},
			core.AttendanceRecord{ID: "a2-" + date.Format("02"), EmployeeID: "e2", Date: date, HoursWorked: 8},
		)
	}
	return employees, projects, attendance
}

func TestGenerateHealthySnapshotIsQuiet(t *testing.T) {
	employees, projects, attendance := healthyState()
	out := Generate(employees, projects, attendance, day("2026-08-30"), finance.DefaultPolicy())

	if len(out) != 0 {
		t.Fatalf("expected no insights, got %d: %+v", len(out), out)
	}
}

func TestGenerateUtilizationRule(t *testing.T) {
	employees, projects, attendance := healthyState()
	employees = append(employees,
		core.Employee{ID: "e3", Name: "Bench", Status: core.EmployeeStatusActive, HourlyRate: 10, ActualRate: 20})

	out := Generate(employees, projects, attendance, day("2026-08-30"), finance.DefaultPolicy())

	found := false
	for _, insight := range out {
		if insight.Type == TypeOptimization {
			found = true
			if insight.Priority != 1 || insight.Impact != ImpactHigh || !insight.ActionRequired {
				t.Fatalf("unexpected utilization insight: %+v", insight)
			}
		}
	}
	if !found {
		t.Fatal("expected a utilization optimization insight at 66.67%")
	}
}

func TestGenerateMarginRuleCarriesDeadline(t *testing.T) {
	employees, projects, attendance := healthyState()
	for i := range employees {
		employees[i].ActualRate = 11 // ~9% margin
	}
	now := day("2026-08-30")

	out := Generate(employees, projects, attendance, now, finance.DefaultPolicy())

	for _, insight := range out {
		if insight.Type == TypeAlert && insight.Category == CategoryFinancial {
			if insight.Priority != 2 {
				t.Fatalf("margin alert priority = %d, want 2", insight.Priority)
			}
			if insight.Deadline == nil || !insight.Deadline.Equal(now.AddDate(0, 0, 7)) {
				t.Fatalf("margin alert must carry a 7-day deadline, got %v", insight.Deadline)
			}
			return
		}
	}
	t.Fatal("expected a low-margin alert")
}

func TestGenerateProductivityAchievement(t *testing.T) {
	employees, projects, attendance := healthyState()
	for i := range employees {
		employees[i].ActualRate = 300
		employees[i].HourlyRate = 150
	}

	out := Generate(employees, projects, attendance, day("2026-08-30"), finance.DefaultPolicy())

	for _, insight := range out {
		if insight.Type == TypeAchievement {
			if insight.Priority != 3 || insight.Impact != ImpactMedium {
				t.Fatalf("unexpected achievement: %+v", insight)
			}
			return
		}
	}
	t.Fatal("expected a productivity achievement at 300/hr billing")
}

func TestGenerateDocumentExpiryWindows(t *testing.T) {
	now := day("2026-08-30")
	employees, projects, attendance := healthyState()
	employees[0].Documents = []core.Document{
		{ID: "d1", Name: "Iqama", Expiry: now.AddDate(0, 0, 5)},
		{ID: "d2", Name: "Certificate", Expiry: now.AddDate(0, 0, 20)},
		{ID: "d3", Name: "Passport", Expiry: now.AddDate(0, 0, 45)},
		{ID: "d4", Name: "Old Permit", Expiry: now.AddDate(0, 0, -2)},
	}

	out := Generate(employees, projects, attendance, now, finance.DefaultPolicy())

	var compliance []Insight
	for _, insight := range out {
		if insight.Category == CategoryCompliance {
			compliance = append(compliance, insight)
		}
	}
	if len(compliance) != 2 {
		t.Fatalf("expected 2 document alerts (5d and 20d), got %d", len(compliance))
	}
	// Sorted output: priority 1 (5 days) before priority 4 (20 days).
	if compliance[0].Priority != 1 || compliance[1].Priority != 4 {
		t.Fatalf("unexpected priorities: %d, %d", compliance[0].Priority, compliance[1].Priority)
	}
}

func TestGenerateProjectRules(t *testing.T) {
	now := day("2026-08-30")
	employees, projects, attendance := healthyState()
	projects[0].ProfitMargin = 30
	projects = append(projects,
		// Completed project with terrible attendance: must be ignored.
		core.Project{ID: "p2", Name: "Done", Status: core.ProjectStatusCompleted, ProfitMargin: 40},
		// On-hold project with no workers: 0% attendance alert.
		core.Project{ID: "p3", Name: "Idle", Status: core.ProjectStatusHold},
	)

	out := Generate(employees, projects, attendance, now, finance.DefaultPolicy())

	var recommendations, attendanceAlerts int
	for _, insight := range out {
		switch {
		case insight.Type == TypeRecommendation:
			recommendations++
			if insight.Priority != 3 {
				t.Fatalf("recommendation priority = %d, want 3", insight.Priority)
			}
		case insight.Type == TypeAlert && insight.Category == CategoryProjects:
			attendanceAlerts++
			if insight.Priority != 2 {
				t.Fatalf("attendance alert priority = %d, want 2", insight.Priority)
			}
		}
	}
	if recommendations != 1 {
		t.Fatalf("expected 1 high-margin recommendation, got %d", recommendations)
	}
	if attendanceAlerts != 1 {
		t.Fatalf("expected 1 low-attendance alert, got %d", attendanceAlerts)
	}
}

func TestGeneratePriorityOrdering(t *testing.T) {
	now := day("2026-08-30")
	employees, projects, attendance := healthyState()
	// Fire a spread of rules at once.
	employees = append(employees,
		core.Employee{ID: "e3", Name: "Bench", Status: core.EmployeeStatusActive, HourlyRate: 10, ActualRate: 20})
	employees[0].Documents = []core.Document{
		{ID: "d1", Name: "Iqama", Expiry: now.AddDate(0, 0, 20)},
	}
	projects[0].ProfitMargin = 30

	out := Generate(employees, projects, attendance, now, finance.DefaultPolicy())

	if len(out) < 3 {
		t.Fatalf("expected several insights, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Priority < out[i-1].Priority {
			t.Fatalf("priorities not monotonic at %d: %d after %d", i, out[i].Priority, out[i-1].Priority)
		}
	}
	for _, insight := range out {
		if insight.Status != StatusNew {
			t.Fatalf("every insight starts as %q, got %q", StatusNew, insight.Status)
		}
		if insight.ID == "" {
			t.Fatal("insight ID must be set")
		}
	}
}
