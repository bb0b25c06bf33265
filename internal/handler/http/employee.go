package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
	employeeservice "github.com/hraxis/hr-backend-go/internal/service/employee"
)

type EmployeeHandler struct {
	employeeService *employeeservice.Service
}

func NewEmployeeHandler(employeeService *employeeservice.Service) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", employee.ToResponse(created))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}

	response.Success(w, result)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", employee.ToResponse(updated))
}
