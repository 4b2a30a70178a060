package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a discrete bookable time window for one doctor on one date.
// Slots are created in batches by the availability generator and flipped to
// booked exclusively by the booking flow.
type AvailabilitySlot struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_slots_doctor_date" json:"doctor_id"`
	SlotDate  time.Time `gorm:"type:date;not null;index:idx_slots_doctor_date" json:"slot_date"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"` // HH:MM
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`   // HH:MM
	IsBooked  bool      `gorm:"not null;default:false" json:"is_booked"`
	IsLocked  bool      `gorm:"not null;default:false" json:"is_locked"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// IsDeletable reports whether the slot may still be removed. Booked or locked
// slots are never deleted so committed appointments keep their backing row.
func (s *AvailabilitySlot) IsDeletable() bool {
	return !s.IsBooked && !s.IsLocked
}
