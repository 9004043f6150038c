package reportshandler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"manpower/internal/domain/core"
	"manpower/internal/domain/finance"
	"manpower/internal/domain/insights"
	"manpower/internal/domain/metrics"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
)

const maxTrendWeeks = 52

type Handler struct {
	Service      *core.Service
	Policy       finance.RatePolicy
	DefaultWeeks int
	Now          func() time.Time
}

func NewHandler(service *core.Service, policy finance.RatePolicy, defaultWeeks int) *Handler {
	if defaultWeeks < 1 || defaultWeeks > maxTrendWeeks {
		defaultWeeks = metrics.DefaultTrendWeeks
	}
	return &Handler{Service: service, Policy: policy, DefaultWeeks: defaultWeeks, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/metrics", h.handleDashboardMetrics)
	r.Get("/dashboard/trends", h.handleProfitTrends)
	r.Get("/projects/{projectID}/metrics", h.handleProjectMetrics)
	r.Get("/insights", h.handleInsights)
}

func (h *Handler) handleDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employees, projects, attendance, err := h.Service.Snapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to load workforce data", requestID)
		return
	}
	api.Success(w, metrics.Dashboard(employees, projects, attendance, h.Policy), requestID)
}

func (h *Handler) handleProfitTrends(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	weeks := h.DefaultWeeks
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTrendWeeks {
			api.Fail(w, http.StatusBadRequest, "invalid_weeks", "weeks must be an integer between 1 and 52", requestID)
			return
		}
		weeks = parsed
	}

	employees, _, attendance, err := h.Service.Snapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to load workforce data", requestID)
		return
	}
	api.Success(w, metrics.ProfitTrends(employees, attendance, weeks, h.Now(), h.Policy), requestID)
}

func (h *Handler) handleProjectMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	projectID := chi.URLParam(r, "projectID")

	if _, err := h.Service.GetProject(r.Context(), projectID); err != nil {
		api.Fail(w, http.StatusNotFound, "project_not_found", "project not found", requestID)
		return
	}

	employees, _, attendance, err := h.Service.Snapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to load workforce data", requestID)
		return
	}
	api.Success(w, metrics.Project(projectID, employees, attendance, h.Policy), requestID)
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employees, projects, attendance, err := h.Service.Snapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_failed", "failed to load workforce data", requestID)
		return
	}
	api.Success(w, insights.Generate(employees, projects, attendance, h.Now(), h.Policy), requestID)
}
