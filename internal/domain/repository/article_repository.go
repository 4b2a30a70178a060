package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(db *gorm.DB, article *entity.Article) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Article, error)
	FindPublished(db *gorm.DB) ([]entity.Article, error)
	FindByAuthor(db *gorm.DB, authorID uuid.UUID) ([]entity.Article, error)
	Update(db *gorm.DB, article *entity.Article) error
	SetPublished(db *gorm.DB, id uuid.UUID, published bool) (int64, error)
}
