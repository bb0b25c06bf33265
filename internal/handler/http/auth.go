package http

import (
	"encoding/json"
	"net/http"

	"github.com/hraxis/hr-backend-go/internal/domain/auth"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
	authservice "github.com/hraxis/hr-backend-go/internal/service/auth"
)

type AuthHandler struct {
	authService *authservice.Service
}

func NewAuthHandler(authService *authservice.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered", auth.UserResponse{
		ID:      created.ID,
		Email:   created.Email,
		IsStaff: created.IsStaff,
	})
}
