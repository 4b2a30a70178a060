package handler

import (
	"encoding/json"
	"net/http"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ArticleHandler struct {
	articleUsecase usecase.ArticleUsecase
	validator      *validator.CustomValidator
}

func NewArticleHandler(articleUsecase usecase.ArticleUsecase, validator *validator.CustomValidator) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		validator:      validator,
	}
}

// CreateArticle creates a draft health article for the authenticated doctor
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	article, err := h.articleUsecase.CreateArticle(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create article")
		return
	}

	response.Success(w, http.StatusCreated, "Article created successfully", article)
}

func (h *ArticleHandler) GetPublishedArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleUsecase.GetPublishedArticles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get articles")
		return
	}

	response.Success(w, http.StatusOK, "Articles retrieved successfully", articles)
}

func (h *ArticleHandler) GetMyArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleUsecase.GetMyArticles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get articles")
		return
	}

	response.Success(w, http.StatusOK, "Articles retrieved successfully", articles)
}

func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	article, err := h.articleUsecase.GetArticle(r.Context(), articleID)
	if err != nil {
		if err == usecase.ErrArticleNotFound {
			response.NotFound(w, "Article not found")
			return
		}
		response.InternalServerError(w, "Failed to get article")
		return
	}

	response.Success(w, http.StatusOK, "Article retrieved successfully", article)
}
