package repository

import (
	"errors"
	"time"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilitySlotRepository struct{}

func NewAvailabilitySlotRepository() domainRepo.AvailabilitySlotRepository {
	return &availabilitySlotRepository{}
}

func (r *availabilitySlotRepository) CreateBatch(db *gorm.DB, slots []entity.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}
	return db.Create(&slots).Error
}

func (r *availabilitySlotRepository) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.Where("doctor_id = ? AND slot_date = ?", doctorID, date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilitySlotRepository) FindByDoctorDateTime(db *gorm.DB, doctorID uuid.UUID, date time.Time, startTime string) (*entity.AvailabilitySlot, error) {
	var slot entity.AvailabilitySlot
	err := db.Where("doctor_id = ? AND slot_date = ? AND start_time = ?", doctorID, date.Format("2006-01-02"), startTime).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *availabilitySlotRepository) SetBooked(db *gorm.DB, id int64, booked bool) (int64, error) {
	result := db.Model(&entity.AvailabilitySlot{}).
		Where("id = ? AND is_booked = ?", id, !booked).
		Update("is_booked", booked)
	return result.RowsAffected, result.Error
}

// DeleteUnbooked removes only free slots in the range; booked or locked rows
// survive so a schedule regeneration cannot orphan confirmed appointments.
func (r *availabilitySlotRepository) DeleteUnbooked(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) (int64, error) {
	result := db.Where(
		"doctor_id = ? AND slot_date BETWEEN ? AND ? AND is_booked = false AND is_locked = false",
		doctorID, from.Format("2006-01-02"), to.Format("2006-01-02"),
	).Delete(&entity.AvailabilitySlot{})
	return result.RowsAffected, result.Error
}
