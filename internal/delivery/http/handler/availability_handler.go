package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GenerateSlots expands a recurrence declaration into bookable slots for the
// authenticated doctor
// @Summary Generate availability slots
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.GenerateSlotsRequest true "Generate Slots Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/availability [post]
func (h *AvailabilityHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.GenerateSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRange,
			usecase.ErrInvalidDateFormat,
			usecase.ErrInvalidTimeFormat,
			usecase.ErrEmptyDailyWindow,
			usecase.ErrInvalidSlotDuration,
			usecase.ErrNoWeekdaysSelected,
			usecase.ErrUnsupportedMonthly,
			usecase.ErrUnknownFrequency:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to generate slots")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slots generated successfully", result)
}

// ClearSlots deletes unbooked slots for the authenticated doctor within a
// date range
func (h *AvailabilityHandler) ClearSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.ClearSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.ClearUnbookedSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRange, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to clear slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots cleared successfully", result)
}

// ListSlots returns a doctor's slots for one date, booked ones included so
// patients can see the full day
func (h *AvailabilityHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid or missing date, use YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availabilityUsecase.ListSlots(r.Context(), doctorID, date)
	if err != nil {
		response.InternalServerError(w, "Failed to list slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
