package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hraxis/hr-backend-go/internal/domain/salary"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
	salaryservice "github.com/hraxis/hr-backend-go/internal/service/salary"
)

type SalaryHandler struct {
	salaryService *salaryservice.Service
}

func NewSalaryHandler(salaryService *salaryservice.Service) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

func (h *SalaryHandler) GetComponents(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	components, err := h.salaryService.GetComponents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salary.ToComponentsResponse(components))
}

func (h *SalaryHandler) SetComponents(w http.ResponseWriter, r *http.Request) {
	var req salary.SetComponentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	components, err := h.salaryService.SetComponents(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary components saved", salary.ToComponentsResponse(components))
}

func (h *SalaryHandler) ApplyRevision(w http.ResponseWriter, r *http.Request) {
	var req salary.ApplyRevisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	revision, err := h.salaryService.ApplyRevision(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary revision applied", salary.ToRevisionResponse(revision))
}

func (h *SalaryHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	revisions, err := h.salaryService.ListRevisions(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]salary.RevisionResponse, 0, len(revisions))
	for _, rev := range revisions {
		result = append(result, salary.ToRevisionResponse(rev))
	}

	response.Success(w, result)
}
