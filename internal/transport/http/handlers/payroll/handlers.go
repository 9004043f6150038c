package payrollhandler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"manpower/internal/domain/core"
	"manpower/internal/domain/payroll"
	"manpower/internal/platform/metrics"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
	"manpower/internal/transport/http/shared"
)

type Handler struct {
	Service   *payroll.Service
	Collector *metrics.Collector
	Now       func() time.Time
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/run", h.handleRun)
		r.Get("/register.csv", h.handleRegisterCSV)
		r.Get("/bank-file", h.handleBankFile)
		r.Get("/payslips/{employeeID}", h.handlePayslipText)
		r.Get("/payslips/{employeeID}.pdf", h.handlePayslipPDF)
	})
}

func (h *Handler) period(r *http.Request, v *shared.Validator) (time.Time, time.Time) {
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

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := h.period(r, v)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.RunPeriod(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleRegisterCSV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := h.period(r, v)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.RunPeriod(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", requestID)
		return
	}

	h.Collector.RecordExport()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payroll-register.csv"))
	fmt.Fprint(w, payroll.RegisterCSV(result))
}

func (h *Handler) handleBankFile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := h.period(r, v)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.RunPeriod(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", requestID)
		return
	}

	h.Collector.RecordExport()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bank-transfer.txt"))
	fmt.Fprint(w, payroll.BankTransferFile(result, h.Now()))
}

func (h *Handler) handlePayslipText(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := h.period(r, v)
	if v.Reject(w, requestID) {
		return
	}

	item, err := h.Service.EmployeePeriod(r.Context(), chi.URLParam(r, "employeeID"), from, to)
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}

	h.Collector.RecordExport()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, payroll.PayslipText(item, from, to))
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := h.period(r, v)
	if v.Reject(w, requestID) {
		return
	}

	item, err := h.Service.EmployeePeriod(r.Context(), chi.URLParam(r, "employeeID"), from, to)
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}

	h.Collector.RecordExport()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+item.EmployeeNumber+".pdf"))
	if err := payroll.WritePayslipPDF(w, item, from, to); err != nil {
		// Headers are out the door at this point, nothing left to salvage.
		return
	}
}

func failPayrollError(w http.ResponseWriter, err error, requestID string) {
	if errors.Is(err, core.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "payroll_failed", "failed to build payslip", requestID)
}
