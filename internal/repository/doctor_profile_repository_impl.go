package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("City").Preload("Qualifications").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Search returns profiles for active doctors, optionally filtered by city
// name, specialization and doctor name.
func (r *doctorProfileRepository) Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.VerifiedOnly {
			query = query.Where("doctor_profiles.is_verified = ?", true)
		}
		if filter.City != "" {
			query = query.
				Joins("JOIN cities ON cities.id = doctor_profiles.city_id").
				Where("cities.name ILIKE ?", "%"+filter.City+"%")
		}
		if filter.Specialization != "" {
			query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
	}

	err := query.
		Preload("User").Preload("City").Preload("Qualifications", "is_verified = ?", true).
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "City", "Qualifications", "Slots").Save(profile).Error
}

func (r *doctorProfileRepository) SetVerified(db *gorm.DB, userID uuid.UUID, verified bool) (int64, error) {
	result := db.Model(&entity.DoctorProfile{}).Where("user_id = ?", userID).Update("is_verified", verified)
	return result.RowsAffected, result.Error
}
