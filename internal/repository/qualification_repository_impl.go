package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type qualificationRepository struct{}

func NewQualificationRepository() domainRepo.QualificationRepository {
	return &qualificationRepository{}
}

func (r *qualificationRepository) Create(db *gorm.DB, qualification *entity.Qualification) error {
	return db.Create(qualification).Error
}

func (r *qualificationRepository) FindByID(db *gorm.DB, id int64) (*entity.Qualification, error) {
	var qualification entity.Qualification
	err := db.Where("id = ?", id).First(&qualification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &qualification, nil
}

func (r *qualificationRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Qualification, error) {
	var qualifications []entity.Qualification
	err := db.Where("doctor_id = ?", doctorID).Order("year DESC").Find(&qualifications).Error
	if err != nil {
		return nil, err
	}
	return qualifications, nil
}

func (r *qualificationRepository) SetVerified(db *gorm.DB, id int64, verified bool) (int64, error) {
	result := db.Model(&entity.Qualification{}).Where("id = ?", id).Update("is_verified", verified)
	return result.RowsAffected, result.Error
}
