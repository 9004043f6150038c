package core

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore is a mutex-guarded in-memory Store. It backs tests and the
// storeless run mode; semantics match the Postgres store, including the
// attendance cascade on employee delete.
type MemStore struct {
	mu         sync.RWMutex
	employees  map[string]Employee
	projects   map[string]Project
	attendance map[string]AttendanceRecord
}

func NewMemStore() *MemStore {
	return &MemStore{
		employees:  make(map[string]Employee),
		projects:   make(map[string]Project),
		attendance: make(map[string]AttendanceRecord),
	}
}

func (s *MemStore) ListEmployees(ctx context.Context) ([]Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		out = append(out, copyEmployee(emp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeNumber < out[j].EmployeeNumber })
	return out, nil
}

func (s *MemStore) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	copied := copyEmployee(emp)
	return &copied, nil
}

func (s *MemStore) CreateEmployee(ctx context.Context, emp *Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees[emp.ID] = copyEmployee(*emp)
	return nil
}

func (s *MemStore) UpdateEmployee(ctx context.Context, emp *Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[emp.ID]; !ok {
		return ErrEmployeeNotFound
	}
	s.employees[emp.ID] = copyEmployee(*emp)
	return nil
}

func (s *MemStore) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

func (s *MemStore) ListProjects(ctx context.Context) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Project, 0, len(s.projects))
	for _, project := range s.projects {
		out = append(out, copyProject(project))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStore) GetProject(ctx context.Context, id string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	copied := copyProject(project)
	return &copied, nil
}

func (s *MemStore) CreateProject(ctx context.Context, project *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects[project.ID] = copyProject(*project)
	return nil
}

func (s *MemStore) UpdateProject(ctx context.Context, project *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; !ok {
		return ErrProjectNotFound
	}
	s.projects[project.ID] = copyProject(*project)
	return nil
}

func (s *MemStore) ListAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	return s.ListAttendanceInRange(ctx, time.Time{}, time.Time{})
}

func (s *MemStore) ListAttendanceInRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]AttendanceRecord, 0, len(s.attendance))
	for _, record := range s.attendance {
		if !from.IsZero() && record.Date.Before(from) {
			continue
		}
		if !to.IsZero() && record.Date.After(to) {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *MemStore) GetAttendance(ctx context.Context, id string) (*AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.attendance[id]
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	return &record, nil
}

func (s *MemStore) CreateAttendance(ctx context.Context, record *AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendance[record.ID] = *record
	return nil
}

func (s *MemStore) CreateAttendanceBatch(ctx context.Context, records []AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		s.attendance[record.ID] = record
	}
	return nil
}

func (s *MemStore) UpdateAttendance(ctx context.Context, record *AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attendance[record.ID]; !ok {
		return ErrAttendanceNotFound
	}
	s.attendance[record.ID] = *record
	return nil
}

func (s *MemStore) DeleteAttendance(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attendance[id]; !ok {
		return ErrAttendanceNotFound
	}
	delete(s.attendance, id)
	return nil
}

func (s *MemStore) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, record := range s.attendance {
		if record.EmployeeID == employeeID {
			delete(s.attendance, id)
		}
	}
	return nil
}

func (s *MemStore) Ping(ctx context.Context) error {
	return nil
}

func copyEmployee(emp Employee) Employee {
	out := emp
	if emp.ProjectID != nil {
		projectID := *emp.ProjectID
		out.ProjectID = &projectID
	}
	out.Skills = append([]string(nil), emp.Skills...)
	out.Documents = append([]Document(nil), emp.Documents...)
	return out
}

func copyProject(project Project) Project {
	out := project
	if project.StartDate != nil {
		start := *project.StartDate
		out.StartDate = &start
	}
	if project.EndDate != nil {
		end := *project.EndDate
		out.EndDate = &end
	}
	out.StatusHistory = append([]StatusChange(nil), project.StatusHistory...)
	return out
}
