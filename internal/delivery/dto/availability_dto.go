package dto

// Request DTOs

// GenerateSlotsRequest declares recurring or one-off availability.
// FIXED rules use Date; DAILY and WEEKLY rules use StartDate/EndDate, and
// WEEKLY rules additionally carry DaysOfWeek (0=Sunday..6=Saturday).
type GenerateSlotsRequest struct {
	Frequency           string `json:"frequency" validate:"required,oneof=FIXED DAILY WEEKLY"`
	Date                string `json:"date" validate:"omitempty"`       // Format: YYYY-MM-DD
	StartDate           string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate             string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
	DaysOfWeek          []int  `json:"day_of_week" validate:"omitempty,dive,gte=0,lte=6"`
	StartTime           string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime             string `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,min=1"`
}

type ClearSlotsRequest struct {
	StartDate string `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
}

// Response DTOs

type GenerateSlotsResponse struct {
	SlotsCreated int `json:"slots_created"`
}

type ClearSlotsResponse struct {
	SlotsRemoved int `json:"slots_removed"`
}

type SlotResponse struct {
	ID        int64  `json:"id"`
	SlotDate  string `json:"slot_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
