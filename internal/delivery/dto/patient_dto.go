package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Address     string    `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
