package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models/dto"
	"github.com/hongminglow/newsroom-be/internal/service"
)

// AuthHandler owns the register/login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err, "user")
		return
	}
	respond.JSON(w, http.StatusCreated, "user registered successfully", dto.AuthResponse{Token: res.Token, Role: res.Role})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.AuthResponse{Token: res.Token, Role: res.Role})
}
