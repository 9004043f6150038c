package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
	"manpower/internal/domain/metrics"
)

// Rule thresholds. These are reporting conventions rather than statutory
// rates, so they stay constants here instead of moving into RatePolicy.
const (
	utilizationTarget  = 85.0
	marginFloor        = 20.0
	productivityTarget = 100.0
	highMarginBar      = 25.0
	attendanceFloor    = 80.0

	documentExpiryWindowDays = 30
	documentUrgentDays       = 7
	marginDeadlineDays       = 7
)

// Generate evaluates every rule against the snapshot and returns all
// matches, most urgent first (ascending priority, stable within a level).
// Rules are independent; no match suppresses another.
func Generate(employees []core.Employee, projects []core.Project, attendance []core.AttendanceRecord, now time.Time, policy finance.RatePolicy) []Insight {
	dashboard := metrics.Dashboard(employees, projects, attendance, policy)

	var out []Insight

	if dashboard.UtilizationRate < utilizationTarget {
		out = append(out, Insight{
			ID:    uuid.NewString(),
			Type:  TypeOptimization,
			Title: "Workforce utilization below target",
			Description: fmt.Sprintf("Utilization is %.2f%%, below the %.0f%% target. Review bench employees for project assignment.",
				dashboard.UtilizationRate, utilizationTarget),
			Impact:         ImpactHigh,
			Category:       CategoryWorkforce,
			ActionRequired: true,
			Priority:       1,
			Status:         StatusNew,
			CreatedAt:      now,
		})
	}

	if dashboard.AverageProfitMargin < marginFloor {
		deadline := now.AddDate(0, 0, marginDeadlineDays)
		out = append(out, Insight{
			ID:    uuid.NewString(),
			Type:  TypeAlert,
			Title: "Average profit margin below floor",
			Description: fmt.Sprintf("Average margin is %.2f%%, below the %.0f%% floor. Review billing rates and overtime mix.",
				dashboard.AverageProfitMargin, marginFloor),
			Impact:         ImpactHigh,
			Category:       CategoryFinancial,
			ActionRequired: true,
			Priority:       2,
			Status:         StatusNew,
			CreatedAt:      now,
			Deadline:       &deadline,
		})
	}

	if dashboard.ProductivityIndex > productivityTarget {
		out = append(out, Insight{
			ID:    uuid.NewString(),
			Type:  TypeAchievement,
			Title: "Productivity above target",
			Description: fmt.Sprintf("Revenue per hour is %.2f, above the %.0f target.",
				dashboard.ProductivityIndex, productivityTarget),
			Impact:    ImpactMedium,
			Category:  CategoryProductivity,
			Priority:  3,
			Status:    StatusNew,
			CreatedAt: now,
		})
	}

	for i := range employees {
		emp := &employees[i]
		for _, doc := range emp.Documents {
			days := daysUntil(now, doc.Expiry)
			if days <= 0 || days > documentExpiryWindowDays {
				continue
			}
			priority := 4
			if days <= documentUrgentDays {
				priority = 1
			}
			deadline := doc.Expiry
			out = append(out, Insight{
				ID:   uuid.NewString(),
				Type: TypeAlert,
				Title: fmt.Sprintf("Document expiring: %s (%s)",
					doc.Name, emp.Name),
				Description: fmt.Sprintf("%s for %s expires in %d day(s). Renew before %s.",
					doc.Name, emp.Name, days, doc.Expiry.Format("2006-01-02")),
				Impact:         ImpactHigh,
				Category:       CategoryCompliance,
				ActionRequired: true,
				Priority:       priority,
				Status:         StatusNew,
				CreatedAt:      now,
				Deadline:       &deadline,
			})
		}
	}

	for i := range projects {
		project := &projects[i]
		if project.Status != core.ProjectStatusActive && project.Status != core.ProjectStatusHold {
			continue
		}

		if project.ProfitMargin > highMarginBar {
			out = append(out, Insight{
				ID:   uuid.NewString(),
				Type: TypeRecommendation,
				Title: fmt.Sprintf("High-margin project: %s", project.Name),
				Description: fmt.Sprintf("%s runs at a declared %.2f%% margin. Consider allocating more workforce.",
					project.Name, project.ProfitMargin),
				Impact:    ImpactMedium,
				Category:  CategoryProjects,
				Priority:  3,
				Status:    StatusNew,
				CreatedAt: now,
			})
		}

		projectMetrics := metrics.Project(project.ID, employees, attendance, policy)
		if projectMetrics.AttendanceRate < attendanceFloor {
			out = append(out, Insight{
				ID:   uuid.NewString(),
				Type: TypeAlert,
				Title: fmt.Sprintf("Low attendance on %s", project.Name),
				Description: fmt.Sprintf("Attendance rate on %s is %.2f%%, below the %.0f%% floor.",
					project.Name, projectMetrics.AttendanceRate, attendanceFloor),
				Impact:         ImpactHigh,
				Category:       CategoryProjects,
				ActionRequired: true,
				Priority:       2,
				Status:         StatusNew,
				CreatedAt:      now,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// daysUntil counts whole calendar days from now to expiry, rounding a
// partial day up so "expires later today" still reads as 1 day out.
func daysUntil(now, expiry time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}
