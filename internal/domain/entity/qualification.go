package entity

import (
	"time"

	"github.com/google/uuid"
)

// Qualification is a degree or certification submitted by a doctor and
// verified by an admin before it shows on the public profile.
type Qualification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Degree      string    `gorm:"type:varchar(100);not null" json:"degree"`
	Institution string    `gorm:"type:varchar(255);not null" json:"institution"`
	Year        int       `gorm:"not null" json:"year"`
	IsVerified  bool      `gorm:"not null;default:false;index" json:"is_verified"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Qualification) TableName() string {
	return "qualifications"
}
