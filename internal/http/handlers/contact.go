package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models/dto"
	"github.com/hongminglow/newsroom-be/internal/service"
)

// ContactHandler serves the contact form and the admin inbox.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs the handler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Register attaches the public submission route.
func (h *ContactHandler) Register(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

// RegisterAdmin attaches the inbox routes; mount behind the admin gate.
func (h *ContactHandler) RegisterAdmin(r chi.Router) {
	r.Get("/contact/contactmessages", h.handleList)
	r.Delete("/contact/contactmessages/{id}", h.handleDelete)
}

func (h *ContactHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := h.contact.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respondServiceError(w, r, err, "contact message")
		return
	}
	respond.JSON(w, http.StatusCreated, "contact message saved successfully", msg)
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "contact message")
		return
	}
	respond.JSON(w, http.StatusOK, "contact messages fetched", messages)
}

func (h *ContactHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.contact.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err, "contact message")
		return
	}
	respond.JSON(w, http.StatusOK, "contact message deleted successfully", nil)
}
