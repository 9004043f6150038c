package core

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the Postgres-backed Store. Documents and status history are
// stored as jsonb; the rest of the schema is flat columns.
type PgStore struct {
	DB *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{DB: db}
}

const employeeColumns = `
    id, employee_number, name, COALESCE(name_ar, ''),
    COALESCE(trade, ''), COALESCE(nationality, ''), status,
    hourly_rate, actual_rate, performance_rating,
    project_id, skills, documents, created_at, updated_at`

func (s *PgStore) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY employee_number
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

func (s *PgStore) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmployeeNotFound
	}
	return scanEmployee(rows)
}

func (s *PgStore) CreateEmployee(ctx context.Context, emp *Employee) error {
	documents, err := json.Marshal(emp.Documents)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO employees
      (id, employee_number, name, name_ar, trade, nationality, status,
       hourly_rate, actual_rate, performance_rating, project_id, skills,
       documents, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
  `, emp.ID, emp.EmployeeNumber, emp.Name, emp.NameAr, emp.Trade,
		emp.Nationality, emp.Status, emp.HourlyRate, emp.ActualRate,
		emp.PerformanceRating, emp.ProjectID, emp.Skills, documents,
		emp.CreatedAt, emp.UpdatedAt)
	return err
}

func (s *PgStore) UpdateEmployee(ctx context.Context, emp *Employee) error {
	documents, err := json.Marshal(emp.Documents)
	if err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET employee_number = $2, name = $3, name_ar = $4, trade = $5,
        nationality = $6, status = $7, hourly_rate = $8, actual_rate = $9,
        performance_rating = $10, project_id = $11, skills = $12,
        documents = $13, updated_at = $14
    WHERE id = $1
  `, emp.ID, emp.EmployeeNumber, emp.Name, emp.NameAr, emp.Trade,
		emp.Nationality, emp.Status, emp.HourlyRate, emp.ActualRate,
		emp.PerformanceRating, emp.ProjectID, emp.Skills, documents,
		emp.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *PgStore) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

const projectColumns = `
    id, name, client, COALESCE(location, ''), status,
    start_date, end_date, budget, progress, risk_level, profit_margin,
    status_history, created_at, updated_at`

func (s *PgStore) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+projectColumns+`
    FROM projects
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (s *PgStore) GetProject(ctx context.Context, id string) (*Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+projectColumns+`
    FROM projects
    WHERE id = $1
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrProjectNotFound
	}
	return scanProject(rows)
}

func (s *PgStore) CreateProject(ctx context.Context, project *Project) error {
	history, err := json.Marshal(project.StatusHistory)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO projects
      (id, name, client, location, status, start_date, end_date, budget,
       progress, risk_level, profit_margin, status_history, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
  `, project.ID, project.Name, project.Client, project.Location,
		project.Status, project.StartDate, project.EndDate, project.Budget,
		project.Progress, project.RiskLevel, project.ProfitMargin, history,
		project.CreatedAt, project.UpdatedAt)
	return err
}

func (s *PgStore) UpdateProject(ctx context.Context, project *Project) error {
	history, err := json.Marshal(project.StatusHistory)
	if err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE projects
    SET name = $2, client = $3, location = $4, status = $5, start_date = $6,
        end_date = $7, budget = $8, progress = $9, risk_level = $10,
        profit_margin = $11, status_history = $12, updated_at = $13
    WHERE id = $1
  `, project.ID, project.Name, project.Client, project.Location,
		project.Status, project.StartDate, project.EndDate, project.Budget,
		project.Progress, project.RiskLevel, project.ProfitMargin, history,
		project.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

const attendanceColumns = `
    id, employee_id, date, hours_worked, overtime, break_minutes,
    late_minutes, early_minutes, COALESCE(location, ''), COALESCE(notes, ''),
    created_at, updated_at`

func (s *PgStore) ListAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	return s.ListAttendanceInRange(ctx, time.Time{}, time.Time{})
}

func (s *PgStore) ListAttendanceInRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error) {
	query := `
    SELECT ` + attendanceColumns + `
    FROM attendance
    WHERE ($1::timestamptz IS NULL OR date >= $1)
      AND ($2::timestamptz IS NULL OR date <= $2)
    ORDER BY date, id
  `
	rows, err := s.DB.Query(ctx, query, nullIfZeroTime(from), nullIfZeroTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AttendanceRecord
	for rows.Next() {
		var record AttendanceRecord
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Date,
			&record.HoursWorked, &record.Overtime, &record.BreakMinutes,
			&record.LateMinutes, &record.EarlyMinutes, &record.Location,
			&record.Notes, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PgStore) GetAttendance(ctx context.Context, id string) (*AttendanceRecord, error) {
	var record AttendanceRecord
	err := s.DB.QueryRow(ctx, `
    SELECT `+attendanceColumns+`
    FROM attendance
    WHERE id = $1
  `, id).Scan(&record.ID, &record.EmployeeID, &record.Date,
		&record.HoursWorked, &record.Overtime, &record.BreakMinutes,
		&record.LateMinutes, &record.EarlyMinutes, &record.Location,
		&record.Notes, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *PgStore) CreateAttendance(ctx context.Context, record *AttendanceRecord) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO attendance
      (id, employee_id, date, hours_worked, overtime, break_minutes,
       late_minutes, early_minutes, location, notes, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
  `, record.ID, record.EmployeeID, record.Date, record.HoursWorked,
		record.Overtime, record.BreakMinutes, record.LateMinutes,
		record.EarlyMinutes, record.Location, record.Notes,
		record.CreatedAt, record.UpdatedAt)
	return err
}

func (s *PgStore) CreateAttendanceBatch(ctx context.Context, records []AttendanceRecord) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	for _, record := range records {
		if _, err := tx.Exec(ctx, `
      INSERT INTO attendance
        (id, employee_id, date, hours_worked, overtime, break_minutes,
         late_minutes, early_minutes, location, notes, created_at, updated_at)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, record.ID, record.EmployeeID, record.Date, record.HoursWorked,
			record.Overtime, record.BreakMinutes, record.LateMinutes,
			record.EarlyMinutes, record.Location, record.Notes,
			record.CreatedAt, record.UpdatedAt); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *PgStore) UpdateAttendance(ctx context.Context, record *AttendanceRecord) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE attendance
    SET employee_id = $2, date = $3, hours_worked = $4, overtime = $5,
        break_minutes = $6, late_minutes = $7, early_minutes = $8,
        location = $9, notes = $10, updated_at = $11
    WHERE id = $1
  `, record.ID, record.EmployeeID, record.Date, record.HoursWorked,
		record.Overtime, record.BreakMinutes, record.LateMinutes,
		record.EarlyMinutes, record.Location, record.Notes, record.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

func (s *PgStore) DeleteAttendance(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

func (s *PgStore) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	return err
}

func (s *PgStore) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

func scanEmployee(rows pgx.Rows) (*Employee, error) {
	var emp Employee
	var documents []byte
	if err := rows.Scan(&emp.ID, &emp.EmployeeNumber, &emp.Name, &emp.NameAr,
		&emp.Trade, &emp.Nationality, &emp.Status, &emp.HourlyRate,
		&emp.ActualRate, &emp.PerformanceRating, &emp.ProjectID, &emp.Skills,
		&documents, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return nil, err
	}
	if len(documents) > 0 {
		if err := json.Unmarshal(documents, &emp.Documents); err != nil {
			return nil, err
		}
	}
	return &emp, nil
}

func scanProject(rows pgx.Rows) (*Project, error) {
	var project Project
	var history []byte
	if err := rows.Scan(&project.ID, &project.Name, &project.Client,
		&project.Location, &project.Status, &project.StartDate,
		&project.EndDate, &project.Budget, &project.Progress,
		&project.RiskLevel, &project.ProfitMargin, &history,
		&project.CreatedAt, &project.UpdatedAt); err != nil {
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &project.StatusHistory); err != nil {
			return nil, err
		}
	}
	return &project, nil
}

func nullIfZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
