package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	CityID          *int            `gorm:"index" json:"city_id,omitempty"`
	Biography       string          `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	IsVerified      bool            `gorm:"not null;default:false;index" json:"is_verified"`

	// Relationships
	User           User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	City           *City              `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Qualifications []Qualification    `gorm:"foreignKey:DoctorID" json:"qualifications,omitempty"`
	Slots          []AvailabilitySlot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
