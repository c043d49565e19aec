package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/newsroom-be/internal/auth"
	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models/dto"
	"github.com/hongminglow/newsroom-be/internal/service"
)

// AdminHandler serves account administration. Routes must be mounted behind
// the auth and admin middleware.
type AdminHandler struct {
	users *service.UserService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// Register attaches admin routes to the router.
func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/admin/users", h.handleList)
	r.Post("/admin/grant-admin", h.handleGrantAdmin)
	r.Delete("/admin/users/{id}", h.handleDelete)
}

func (h *AdminHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "users fetched", users)
}

func (h *AdminHandler) handleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req dto.GrantAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	changed, err := h.users.GrantAdmin(r.Context(), caller, req.UsernameToUpdate)
	if err != nil {
		respondServiceError(w, r, err, "user")
		return
	}
	if !changed {
		respond.JSON(w, http.StatusOK, fmt.Sprintf("user %s is already an admin", req.UsernameToUpdate), nil)
		return
	}
	respond.JSON(w, http.StatusOK, fmt.Sprintf("user %s is now an admin", req.UsernameToUpdate), nil)
}

func (h *AdminHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err, "user")
		return
	}
	respond.JSON(w, http.StatusOK, "user deleted successfully", nil)
}

// callerIdentity fetches the identity the auth middleware stored on the request.
func callerIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "no token, authorization denied")
		return auth.Identity{}, false
	}
	return id, true
}
