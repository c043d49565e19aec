package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models/dto"
	"github.com/hongminglow/newsroom-be/internal/service"
)

// NewsHandler serves public reads and admin writes of news posts.
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler constructs the handler.
func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// Register attaches the public read routes.
func (h *NewsHandler) Register(r chi.Router) {
	r.Get("/news", h.handleList)
	r.Get("/news/{id}", h.handleGet)
}

// RegisterAdmin attaches the write routes; mount behind the admin gate.
func (h *NewsHandler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/news", h.handleCreate)
	r.Put("/admin/news/{id}", h.handleUpdate)
	r.Delete("/admin/news/{id}", h.handleDelete)
}

func (h *NewsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.news.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "news post")
		return
	}
	respond.JSON(w, http.StatusOK, "news posts fetched", posts)
}

func (h *NewsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.news.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err, "news post")
		return
	}
	respond.JSON(w, http.StatusOK, "news post fetched", post)
}

func (h *NewsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req dto.NewsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.news.Create(r.Context(), caller.Username, newsInput(req))
	if err != nil {
		respondServiceError(w, r, err, "news post")
		return
	}
	respond.JSON(w, http.StatusCreated, "news post created successfully", post)
}

func (h *NewsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.NewsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.news.Update(r.Context(), chi.URLParam(r, "id"), newsInput(req))
	if err != nil {
		respondServiceError(w, r, err, "news post")
		return
	}
	respond.JSON(w, http.StatusOK, "news post updated successfully", post)
}

func (h *NewsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.news.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err, "news post")
		return
	}
	respond.JSON(w, http.StatusOK, "news post deleted successfully", nil)
}

func newsInput(req dto.NewsRequest) service.NewsInput {
	return service.NewsInput{
		Title:      req.Title,
		Content:    req.Content,
		FontFamily: req.FontFamily,
		ImageURL:   req.ImageURL,
	}
}
