package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type articleRepository struct{}

func NewArticleRepository() domainRepo.ArticleRepository {
	return &articleRepository{}
}

func (r *articleRepository) Create(db *gorm.DB, article *entity.Article) error {
	return db.Create(article).Error
}

func (r *articleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Article, error) {
	var article entity.Article
	err := db.Preload("Author.User").Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindPublished(db *gorm.DB) ([]entity.Article, error) {
	var articles []entity.Article
	err := db.Preload("Author.User").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByAuthor(db *gorm.DB, authorID uuid.UUID) ([]entity.Article, error) {
	var articles []entity.Article
	err := db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(db *gorm.DB, article *entity.Article) error {
	return db.Omit("Author").Save(article).Error
}

func (r *articleRepository) SetPublished(db *gorm.DB, id uuid.UUID, published bool) (int64, error) {
	result := db.Model(&entity.Article{}).Where("id = ?", id).Update("is_published", published)
	return result.RowsAffected, result.Error
}
