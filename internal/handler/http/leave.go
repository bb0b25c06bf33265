package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hraxis/hr-backend-go/internal/domain/leave"
	"github.com/hraxis/hr-backend-go/internal/handler/http/middleware"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
	leaveservice "github.com/hraxis/hr-backend-go/internal/service/leave"
)

type LeaveHandler struct {
	leaveService   *leaveservice.Service
	accrualService *leaveservice.AccrualService
}

func NewLeaveHandler(leaveService *leaveservice.Service, accrualService *leaveservice.AccrualService) *LeaveHandler {
	return &LeaveHandler{
		leaveService:   leaveService,
		accrualService: accrualService,
	}
}

func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	// Non-staff users file for themselves regardless of the payload.
	if !actor.IsStaff {
		if actor.EmployeeID == nil {
			response.Forbidden(w, "No employee profile linked to this account")
			return
		}
		req.EmployeeID = *actor.EmployeeID
	}

	request, err := h.leaveService.SubmitRequest(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.ToRequestResponse(request))
}

func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	request, err := h.leaveService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToRequestResponse(request))
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var requests []leave.Request
	if actor.IsStaff {
		requests, err = h.leaveService.ListRequests(r.Context())
	} else {
		if actor.EmployeeID == nil {
			response.Forbidden(w, "No employee profile linked to this account")
			return
		}
		requests, err = h.leaveService.ListEmployeeRequests(r.Context(), *actor.EmployeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToRequestResponses(requests))
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.ApproveRequest(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// An approval that no longer fits the balance is persisted as rejected.
	message := "Leave request approved"
	if request.Status == leave.StatusRejected {
		message = "Leave request rejected: " + request.Remarks
	}

	response.SuccessWithMessage(w, message, leave.ToRequestResponse(request))
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.RejectRequest(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", leave.ToRequestResponse(request))
}

func (h *LeaveHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	balance, err := h.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToBalanceResponse(balance))
}

// RunAccrual triggers the monthly accrual on demand; the scheduler calls
// the same service on its own clock.
func (h *LeaveHandler) RunAccrual(w http.ResponseWriter, r *http.Request) {
	summary, err := h.accrualService.Run(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave accrual run finished", summary)
}
