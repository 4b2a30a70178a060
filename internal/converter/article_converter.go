package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ArticleToResponse converts an Article entity to ArticleResponse DTO
func ArticleToResponse(article *entity.Article) *dto.ArticleResponse {
	if article == nil {
		return nil
	}

	response := &dto.ArticleResponse{
		ID:          article.ID,
		AuthorID:    article.AuthorID,
		Title:       article.Title,
		Content:     article.Content,
		IsPublished: article.IsPublished,
		CreatedAt:   article.CreatedAt,
	}

	if article.Author.UserID != uuid.Nil {
		response.AuthorName = article.Author.User.FullName
	}

	return response
}

// ArticlesToResponses converts a slice of Article entities to slice of ArticleResponse DTOs
func ArticlesToResponses(articles []entity.Article) []dto.ArticleResponse {
	responses := make([]dto.ArticleResponse, len(articles))
	for i, article := range articles {
		resp := ArticleToResponse(&article)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
