package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualificationRepository interface {
	Create(db *gorm.DB, qualification *entity.Qualification) error
	FindByID(db *gorm.DB, id int64) (*entity.Qualification, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Qualification, error)
	SetVerified(db *gorm.DB, id int64, verified bool) (int64, error)
}
