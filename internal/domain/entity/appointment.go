package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked      AppointmentStatus = "BOOKED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentStatusCompleted   AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
)

// Appointment represents a patient's commitment to a doctor's time slot.
// The slot and the appointment are separate records on purpose: the slot is
// doctor-side capacity, the appointment is patient-side commitment.
// Appointments are never physically deleted; status is the only lifecycle.
type Appointment struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AvailabilitySlotID *int64            `gorm:"index" json:"availability_slot_id,omitempty"`
	AppointmentDate    time.Time         `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime    string            `gorm:"type:time;not null" json:"appointment_time"` // HH:MM
	Reason             string            `gorm:"type:text;not null" json:"reason"`
	Status             AppointmentStatus `gorm:"type:varchar(20);not null;default:'BOOKED';index" json:"status"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Slot    *AvailabilitySlot `gorm:"foreignKey:AvailabilitySlotID" json:"slot,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment counts toward the
// no-double-booking constraint.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusBooked || a.Status == AppointmentStatusRescheduled
}

// IsTerminal reports whether the appointment reached a final state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// CanTransitionTo checks the status state machine: BOOKED/RESCHEDULED may move
// to COMPLETED, CANCELLED or RESCHEDULED; terminal states accept nothing.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.IsTerminal() {
		return false
	}
	switch next {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
