package usecase

import (
	"context"
	"errors"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleUsecase interface {
	// CreateArticle drafts a new article by the logged-in doctor; it stays
	// unpublished until an admin approves it.
	CreateArticle(ctx context.Context, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	GetPublishedArticles(ctx context.Context) (*dto.ArticleListResponse, error)
	GetMyArticles(ctx context.Context) (*dto.ArticleListResponse, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
}

type articleUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	articleRepo repository.ArticleRepository
}

func NewArticleUsecase(db *gorm.DB, log *logrus.Logger, articleRepo repository.ArticleRepository) ArticleUsecase {
	return &articleUsecase{
		db:          db,
		log:         log,
		articleRepo: articleRepo,
	}
}

func (u *articleUsecase) CreateArticle(ctx context.Context, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	authorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	article := &entity.Article{
		AuthorID:    authorID,
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: false,
	}

	if err := u.articleRepo.Create(u.db.WithContext(ctx), article); err != nil {
		u.log.Warnf("Failed to create article for doctor %s: %+v", authorID, err)
		return nil, err
	}

	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) GetPublishedArticles(ctx context.Context) (*dto.ArticleListResponse, error) {
	articles, err := u.articleRepo.FindPublished(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list published articles: %+v", err)
		return nil, err
	}

	return &dto.ArticleListResponse{
		Articles: converter.ArticlesToResponses(articles),
		Total:    len(articles),
	}, nil
}

func (u *articleUsecase) GetMyArticles(ctx context.Context) (*dto.ArticleListResponse, error) {
	authorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	articles, err := u.articleRepo.FindByAuthor(u.db.WithContext(ctx), authorID)
	if err != nil {
		u.log.Warnf("Failed to list articles for doctor %s: %+v", authorID, err)
		return nil, err
	}

	return &dto.ArticleListResponse{
		Articles: converter.ArticlesToResponses(articles),
		Total:    len(articles),
	}, nil
}

func (u *articleUsecase) GetArticle(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	article, err := u.articleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find article %s: %+v", id, err)
		return nil, err
	}
	if article == nil || !article.IsPublished {
		return nil, ErrArticleNotFound
	}

	return converter.ArticleToResponse(article), nil
}
