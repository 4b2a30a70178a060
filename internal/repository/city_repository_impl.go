package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"gorm.io/gorm"
)

type cityRepository struct{}

func NewCityRepository() domainRepo.CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) Create(db *gorm.DB, city *entity.City) error {
	return db.Create(city).Error
}

func (r *cityRepository) FindAll(db *gorm.DB) ([]entity.City, error) {
	var cities []entity.City
	err := db.Order("name ASC").Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) FindByID(db *gorm.DB, id int) (*entity.City, error) {
	var city entity.City
	err := db.Where("id = ?", id).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Update(db *gorm.DB, city *entity.City) error {
	return db.Omit("Doctors").Save(city).Error
}

func (r *cityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.City{})
	return result.RowsAffected, result.Error
}
