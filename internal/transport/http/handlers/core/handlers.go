package corehandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	gojson "github.com/goccy/go-json"

	"manpower/internal/domain/core"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
	"manpower/internal/transport/http/shared"
)

var employeeStatuses = []string{core.EmployeeStatusActive, core.EmployeeStatusInactive, core.EmployeeStatusOnLeave}
var projectStatuses = []string{core.ProjectStatusActive, core.ProjectStatusHold, core.ProjectStatusCompleted}
var riskLevels = []string{core.RiskLow, core.RiskMedium, core.RiskHigh}

type Handler struct {
	Service *core.Service
}

func NewHandler(service *core.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleListProjects)
		r.Post("/", h.handleCreateProject)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", h.handleGetProject)
			r.Put("/", h.handleUpdateProject)
		})
	})
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleListAttendance)
		r.Post("/", h.handleCreateAttendance)
		r.Post("/import", h.handleImportAttendance)
		r.Route("/{recordID}", func(r chi.Router) {
			r.Put("/", h.handleUpdateAttendance)
			r.Delete("/", h.handleDeleteAttendance)
		})
	})
}

type employeeRequest struct {
	EmployeeNumber    string          `json:"employeeNumber"`
	Name              string          `json:"name"`
	NameAr            string          `json:"nameAr"`
	Trade             string          `json:"trade"`
	Nationality       string          `json:"nationality"`
	Status            string          `json:"status"`
	HourlyRate        float64         `json:"hourlyRate"`
	ActualRate        float64         `json:"actualRate"`
	PerformanceRating float64         `json:"performanceRating"`
	ProjectID         *string         `json:"projectId"`
	Skills            []string        `json:"skills"`
	Documents         []core.Document `json:"documents"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req employeeRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeNumber", req.EmployeeNumber, "employee number is required")
	v.Required("name", req.Name, "name is required")
	v.Enum("status", req.Status, employeeStatuses, "unknown employee status")
	v.NonNegative("hourlyRate", req.HourlyRate)
	v.NonNegative("actualRate", req.ActualRate)
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Service.CreateEmployee(r.Context(), core.Employee{
		EmployeeNumber:    req.EmployeeNumber,
		Name:              req.Name,
		NameAr:            req.NameAr,
		Trade:             req.Trade,
		Nationality:       req.Nationality,
		Status:            req.Status,
		HourlyRate:        req.HourlyRate,
		ActualRate:        req.ActualRate,
		PerformanceRating: req.PerformanceRating,
		ProjectID:         req.ProjectID,
		Skills:            req.Skills,
		Documents:         req.Documents,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var update core.EmployeeUpdate
	if err := gojson.NewDecoder(r.Body).Decode(&update); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	if update.Status != nil {
		v.Enum("status", *update.Status, employeeStatuses, "unknown employee status")
	}
	if update.HourlyRate != nil {
		v.NonNegative("hourlyRate", *update.HourlyRate)
	}
	if update.ActualRate != nil {
		v.NonNegative("actualRate", *update.ActualRate)
	}
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Service.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), update)
	if err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if err := h.Service.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, requestID)
}

type projectRequest struct {
	Name         string  `json:"name"`
	Client       string  `json:"client"`
	Location     string  `json:"location"`
	Status       string  `json:"status"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Budget       float64 `json:"budget"`
	Progress     float64 `json:"progress"`
	RiskLevel    string  `json:"riskLevel"`
	ProfitMargin float64 `json:"profitMargin"`
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	projects, err := h.Service.ListProjects(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_list_failed", "failed to list projects", requestID)
		return
	}
	api.Success(w, projects, requestID)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	project, err := h.Service.GetProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, project, requestID)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req projectRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", req.Name, "project name is required")
	v.Required("client", req.Client, "client is required")
	v.Enum("status", req.Status, projectStatuses, "unknown project status")
	v.Enum("riskLevel", req.RiskLevel, riskLevels, "unknown risk level")
	if req.Progress < 0 || req.Progress > 100 {
		v.Add("progress", "must be between 0 and 100")
	}

	project := core.Project{
		Name:         req.Name,
		Client:       req.Client,
		Location:     req.Location,
		Status:       req.Status,
		Budget:       req.Budget,
		Progress:     req.Progress,
		RiskLevel:    req.RiskLevel,
		ProfitMargin: req.ProfitMargin,
	}
	if req.StartDate != "" {
		if start, ok := v.Date("startDate", req.StartDate); ok {
			project.StartDate = &start
		}
	}
	if req.EndDate != "" {
		if end, ok := v.Date("endDate", req.EndDate); ok {
			project.EndDate = &end
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.CreateProject(r.Context(), project)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_create_failed", "failed to create project", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var update core.ProjectUpdate
	if err := gojson.NewDecoder(r.Body).Decode(&update); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	if update.Status != nil {
		v.Enum("status", *update.Status, projectStatuses, "unknown project status")
	}
	if update.RiskLevel != nil {
		v.Enum("riskLevel", *update.RiskLevel, riskLevels, "unknown risk level")
	}
	if update.Progress != nil && (*update.Progress < 0 || *update.Progress > 100) {
		v.Add("progress", "must be between 0 and 100")
	}
	if v.Reject(w, requestID) {
		return
	}

	project, err := h.Service.UpdateProject(r.Context(), chi.URLParam(r, "projectID"), update)
	if err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, project, requestID)
}

type attendanceRequest struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	HoursWorked  float64 `json:"hoursWorked"`
	Overtime     float64 `json:"overtime"`
	BreakMinutes int     `json:"breakMinutes"`
	LateMinutes  int     `json:"lateMinutes"`
	EarlyMinutes int     `json:"earlyMinutes"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes"`
}

func (r attendanceRequest) validate(v *shared.Validator) (core.AttendanceRecord, bool) {
	v.Required("employeeId", r.EmployeeID, "employee id is required")
	v.NonNegative("hoursWorked", r.HoursWorked)
	v.NonNegative("overtime", r.Overtime)
	date, ok := v.Date("date", r.Date)
	if !ok {
		return core.AttendanceRecord{}, false
	}
	return core.AttendanceRecord{
		EmployeeID:   r.EmployeeID,
		Date:         date,
		HoursWorked:  r.HoursWorked,
		Overtime:     r.Overtime,
		BreakMinutes: r.BreakMinutes,
		LateMinutes:  r.LateMinutes,
		EarlyMinutes: r.EarlyMinutes,
		Location:     r.Location,
		Notes:        r.Notes,
	}, true
}

func (h *Handler) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := parseRange(r, v)
	if v.Reject(w, requestID) {
		return
	}

	records, err := h.Service.ListAttendanceInRange(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req attendanceRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	record, _ := req.validate(v)
	if v.Reject(w, requestID) {
		return
	}

	if _, err := h.Service.GetEmployee(r.Context(), record.EmployeeID); err != nil {
		failCoreError(w, err, requestID)
		return
	}

	created, err := h.Service.CreateAttendance(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_create_failed", "failed to record attendance", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleImportAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var reqs []attendanceRequest
	if err := gojson.NewDecoder(r.Body).Decode(&reqs); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	records := make([]core.AttendanceRecord, 0, len(reqs))
	for _, req := range reqs {
		record, ok := req.validate(v)
		if ok {
			records = append(records, record)
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	imported, err := h.Service.ImportAttendance(r.Context(), records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_import_failed", "failed to import attendance", requestID)
		return
	}
	api.Created(w, map[string]any{"imported": len(imported), "records": imported}, requestID)
}

func (h *Handler) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req attendanceRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	record, _ := req.validate(v)
	if v.Reject(w, requestID) {
		return
	}
	record.ID = chi.URLParam(r, "recordID")

	updated, err := h.Service.UpdateAttendance(r.Context(), record)
	if err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDeleteAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if err := h.Service.DeleteAttendance(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		failCoreError(w, err, requestID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, requestID)
}

// parseRange reads the optional from/to query parameters; zero times mean
// the range is unbounded on that side.
func parseRange(r *http.Request, v *shared.Validator) (time.Time, time.Time) {
	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, _ = v.Date("from", raw)
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, _ = v.Date("to", raw)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		v.Add("to", "must not be before from")
	}
	return from, to
}

func failCoreError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, core.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, core.ErrProjectNotFound):
		api.Fail(w, http.StatusNotFound, "project_not_found", "project not found", requestID)
	case errors.Is(err, core.ErrAttendanceNotFound):
		api.Fail(w, http.StatusNotFound, "attendance_not_found", "attendance record not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
	}
}
