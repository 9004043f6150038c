package reportshandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
	"manpower/internal/domain/metrics"
	"manpower/internal/transport/http/middleware"
)

type envelope struct {
	Success bool              `json:"success"`
	Data    gojson.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (*chi.Mux, *core.Service) {
	t.Helper()

	service := core.NewService(core.NewMemStore())
	ctx := context.Background()

	emp, err := service.CreateEmployee(ctx, core.Employee{
		EmployeeNumber: "EMP-200",
		Name:           "Dash Worker",
		Status:         core.EmployeeStatusActive,
		HourlyRate:     30,
		ActualRate:     50,
	})
	require.NoError(t, err)

	project, err := service.CreateProject(ctx, core.Project{
		Name:      "Site One",
		Client:    "Client A",
		Status:    core.ProjectStatusActive,
		RiskLevel: core.RiskLow,
	})
	require.NoError(t, err)

	projectID := project.ID
	_, err = service.UpdateEmployee(ctx, emp.ID, core.EmployeeUpdate{ProjectID: &projectID})
	require.NoError(t, err)

	_, err = service.CreateAttendance(ctx, core.AttendanceRecord{
		EmployeeID:  emp.ID,
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		HoursWorked: 8,
		Overtime:    2,
	})
	require.NoError(t, err)

	handler := NewHandler(service, finance.DefaultPolicy(), metrics.DefaultTrendWeeks)
	handler.Now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return router, service
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, gojson.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := get(t, router, "/api/dashboard/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var dashboard metrics.DashboardMetrics
	require.NoError(t, gojson.Unmarshal(env.Data, &dashboard))
	assert.Equal(t, 1, dashboard.TotalWorkforce)
	assert.Equal(t, 1, dashboard.ActiveProjects)
	// 8h at 50 plus 2h overtime billed at 75.
	assert.InDelta(t, 550.0, dashboard.CrossProjectRevenue, 1e-9)
	assert.InDelta(t, 100.0, dashboard.UtilizationRate, 1e-9)
}

func TestProfitTrendsWeeksParam(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := get(t, router, "/api/dashboard/trends?weeks=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var trends []metrics.ProfitTrend
	require.NoError(t, gojson.Unmarshal(env.Data, &trends))
	require.Len(t, trends, 3)
	assert.Equal(t, "Week 1", trends[0].Label)
	assert.Equal(t, "Week 3", trends[2].Label)
}

func TestProfitTrendsRejectsBadWeeks(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, raw := range []string{"0", "-2", "999", "abc"} {
		rec, env := get(t, router, "/api/dashboard/trends?weeks="+raw)
		require.Equal(t, http.StatusBadRequest, rec.Code, "weeks=%s", raw)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid_weeks", env.Error.Code)
	}
}

func TestProjectMetricsUnknownProject(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := get(t, router, "/api/projects/missing/metrics")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "project_not_found", env.Error.Code)
}

func TestInsightsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := get(t, router, "/api/insights")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var items []map[string]any
	require.NoError(t, gojson.Unmarshal(env.Data, &items))
	for i := 1; i < len(items); i++ {
		prev, _ := items[i-1]["priority"].(float64)
		curr, _ := items[i]["priority"].(float64)
		assert.LessOrEqual(t, prev, curr)
	}
}
