package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service owns lifecycle rules on top of a Store: ID and timestamp
// assignment, partial-update semantics, project status history, and the
// attendance cascade when an employee is removed.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Store() Store {
	return s.store
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (*Employee, error) {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if emp.Status == "" {
		emp.Status = EmployeeStatusActive
	}
	now := s.now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if !emp.ProfitableRates() {
		slog.Warn("employee billing rate does not cover cost rate",
			"employeeNumber", emp.EmployeeNumber,
			"hourlyRate", emp.HourlyRate,
			"actualRate", emp.ActualRate)
	}

	if err := s.store.CreateEmployee(ctx, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (*Employee, error) {
	emp, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		emp.Name = *update.Name
	}
	if update.NameAr != nil {
		emp.NameAr = *update.NameAr
	}
	if update.Trade != nil {
		emp.Trade = *update.Trade
	}
	if update.Nationality != nil {
		emp.Nationality = *update.Nationality
	}
	if update.Status != nil {
		emp.Status = *update.Status
	}
	if update.HourlyRate != nil {
		emp.HourlyRate = *update.HourlyRate
	}
	if update.ActualRate != nil {
		emp.ActualRate = *update.ActualRate
	}
	if update.PerformanceRating != nil {
		emp.PerformanceRating = *update.PerformanceRating
	}
	if update.ClearProject {
		emp.ProjectID = nil
	} else if update.ProjectID != nil {
		emp.ProjectID = update.ProjectID
	}
	if update.Skills != nil {
		emp.Skills = *update.Skills
	}
	if update.Documents != nil {
		emp.Documents = *update.Documents
	}
	emp.UpdatedAt = s.now()

	if !emp.ProfitableRates() {
		slog.Warn("employee billing rate does not cover cost rate",
			"employeeNumber", emp.EmployeeNumber,
			"hourlyRate", emp.HourlyRate,
			"actualRate", emp.ActualRate)
	}

	if err := s.store.UpdateEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// DeleteEmployee removes the employee and cascades to that employee's
// attendance records. Aggregations tolerate orphans, but a deliberate
// removal takes the worked-time history with it.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteAttendanceByEmployee(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *Service) CreateProject(ctx context.Context, project Project) (*Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = ProjectStatusActive
	}
	if project.RiskLevel == "" {
		project.RiskLevel = RiskMedium
	}
	now := s.now()
	project.CreatedAt = now
	project.UpdatedAt = now
	project.StatusHistory = []StatusChange{{Status: project.Status, ChangedAt: now}}

	if err := s.store.CreateProject(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Client != nil {
		project.Client = *update.Client
	}
	if update.Location != nil {
		project.Location = *update.Location
	}
	now := s.now()
	if update.Status != nil && *update.Status != project.Status {
		project.Status = *update.Status
		project.StatusHistory = append(project.StatusHistory, StatusChange{
			Status:    project.Status,
			ChangedAt: now,
			Note:      update.StatusNote,
		})
	}
	if update.StartDate != nil {
		project.StartDate = update.StartDate
	}
	if update.EndDate != nil {
		project.EndDate = update.EndDate
	}
	if update.Budget != nil {
		project.Budget = *update.Budget
	}
	if update.Progress != nil {
		project.Progress = *update.Progress
	}
	if update.RiskLevel != nil {
		project.RiskLevel = *update.RiskLevel
	}
	if update.ProfitMargin != nil {
		project.ProfitMargin = *update.ProfitMargin
	}
	project.UpdatedAt = now

	if err := s.store.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) ListAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	return s.store.ListAttendance(ctx)
}

func (s *Service) ListAttendanceInRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error) {
	return s.store.ListAttendanceInRange(ctx, from, to)
}

func (s *Service) CreateAttendance(ctx context.Context, record AttendanceRecord) (*AttendanceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := s.now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.store.CreateAttendance(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ImportAttendance bulk-creates records, e.g. from a timesheet upload.
func (s *Service) ImportAttendance(ctx context.Context, records []AttendanceRecord) ([]AttendanceRecord, error) {
	now := s.now()
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
		records[i].CreatedAt = now
		records[i].UpdatedAt = now
	}
	if err := s.store.CreateAttendanceBatch(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) UpdateAttendance(ctx context.Context, record AttendanceRecord) (*AttendanceRecord, error) {
	existing, err := s.store.GetAttendance(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.now()
	if err := s.store.UpdateAttendance(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) DeleteAttendance(ctx context.Context, id string) error {
	return s.store.DeleteAttendance(ctx, id)
}

// Snapshot loads the three source collections the derived modules consume.
func (s *Service) Snapshot(ctx context.Context) ([]Employee, []Project, []AttendanceRecord, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	attendance, err := s.store.ListAttendance(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return employees, projects, attendance, nil
}
