package repository

import (
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilitySlotRepository interface {
	// CreateBatch persists all slots in a single insert; callers wrap it in a
	// transaction so a failed batch leaves no partial slot set.
	CreateBatch(db *gorm.DB, slots []entity.AvailabilitySlot) error
	FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.AvailabilitySlot, error)
	FindByDoctorDateTime(db *gorm.DB, doctorID uuid.UUID, date time.Time, startTime string) (*entity.AvailabilitySlot, error)
	SetBooked(db *gorm.DB, id int64, booked bool) (int64, error)
	// DeleteUnbooked removes only slots that are neither booked nor locked.
	DeleteUnbooked(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) (int64, error)
}
