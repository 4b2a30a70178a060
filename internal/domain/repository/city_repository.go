package repository

import (
	"mediconnect/internal/domain/entity"

	"gorm.io/gorm"
)

type CityRepository interface {
	Create(db *gorm.DB, city *entity.City) error
	FindAll(db *gorm.DB) ([]entity.City, error)
	FindByID(db *gorm.DB, id int) (*entity.City, error)
	Update(db *gorm.DB, city *entity.City) error
	Delete(db *gorm.DB, id int) (int64, error)
}
