package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" validate:"required"` // Format: HH:MM
	Reason          string    `json:"reason" validate:"required,min=3"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"required"` // Format: HH:MM
}

// Response DTOs

type AppointmentResponse struct {
	ID                 uuid.UUID       `json:"id"`
	PatientID          uuid.UUID       `json:"patient_id"`
	DoctorID           uuid.UUID       `json:"doctor_id"`
	Doctor             *DoctorResponse `json:"doctor,omitempty"`
	AvailabilitySlotID *int64          `json:"availability_slot_id,omitempty"`
	AppointmentDate    string          `json:"appointment_date"`
	AppointmentTime    string          `json:"appointment_time"`
	Reason             string          `json:"reason"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
