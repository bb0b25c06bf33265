package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hraxis/hr-backend-go/internal/domain/payroll"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
	"github.com/hraxis/hr-backend-go/internal/pkg/payslip"
	payrollservice "github.com/hraxis/hr-backend-go/internal/service/payroll"
)

type PayrollHandler struct {
	payrollService *payrollservice.Service
}

func NewPayrollHandler(payrollService *payrollservice.Service) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

func (h *PayrollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.payrollService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", payroll.ToRecordResponse(record))
}

func (h *PayrollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToRecordResponse(record))
}

func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.RecordFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		month, err := strconv.Atoi(monthParam)
		if err != nil {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		filter.Month = &month
	}
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.Year = &year
	}

	records, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToRecordResponses(records))
}

func (h *PayrollHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.payrollService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated", payroll.ToRecordResponse(record))
}

// Payslip streams the record as an xlsx attachment.
func (h *PayrollHandler) Payslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := payslip.Write(&buf, record); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payslip.Filename(record)))
	_, _ = buf.WriteTo(w)
}
