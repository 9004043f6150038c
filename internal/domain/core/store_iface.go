package core

import (
	"context"
	"time"
)

// Store is the persistence boundary for the three source collections. The
// calculation modules never touch a store directly; they consume snapshots
// loaded through it, so any implementation (Postgres, in-memory fixtures)
// can back the same engine.
type Store interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	CreateEmployee(ctx context.Context, emp *Employee) error
	UpdateEmployee(ctx context.Context, emp *Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error

	ListAttendance(ctx context.Context) ([]AttendanceRecord, error)
	ListAttendanceInRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error)
	GetAttendance(ctx context.Context, id string) (*AttendanceRecord, error)
	CreateAttendance(ctx context.Context, record *AttendanceRecord) error
	CreateAttendanceBatch(ctx context.Context, records []AttendanceRecord) error
	UpdateAttendance(ctx context.Context, record *AttendanceRecord) error
	DeleteAttendance(ctx context.Context, id string) error
	DeleteAttendanceByEmployee(ctx context.Context, employeeID string) error

	Ping(ctx context.Context) error
}
