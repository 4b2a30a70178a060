package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialization  string `json:"specialization" validate:"omitempty,min=2,max=100"`
	CityID          *int   `json:"city_id" validate:"omitempty,min=1"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	Biography       string `json:"biography" validate:"omitempty"`
}

type CreateQualificationRequest struct {
	Degree      string `json:"degree" validate:"required,min=2,max=100"`
	Institution string `json:"institution" validate:"required,min=2,max=255"`
	Year        int    `json:"year" validate:"required,min=1900,max=2100"`
}

type SearchDoctorsRequest struct {
	City           string `json:"city"`
	Specialization string `json:"specialization"`
	Name           string `json:"name"`
}

// Response DTOs

type QualificationResponse struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
	IsVerified  bool   `json:"is_verified"`
}

type DoctorResponse struct {
	ID              uuid.UUID               `json:"id"`
	Email           string                  `json:"email"`
	FullName        string                  `json:"full_name"`
	LicenseNumber   string                  `json:"license_number"`
	Specialization  string                  `json:"specialization"`
	City            string                  `json:"city,omitempty"`
	ConsultationFee string                  `json:"consultation_fee"`
	Biography       string                  `json:"biography,omitempty"`
	IsVerified      bool                    `json:"is_verified"`
	IsActive        bool                    `json:"is_active"`
	Qualifications  []QualificationResponse `json:"qualifications,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
