package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

type setFlagRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// VerifyDoctor approves or revokes a doctor's verified badge
func (h *AdminHandler) VerifyDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	flag, ok := h.flag(w, r)
	if !ok {
		return
	}

	if err := h.adminUsecase.VerifyDoctor(r.Context(), doctorID, flag); err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to update doctor verification")
		return
	}

	response.Success(w, http.StatusOK, "Doctor verification updated", nil)
}

// SetDoctorActive activates or deactivates a doctor account
func (h *AdminHandler) SetDoctorActive(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	flag, ok := h.flag(w, r)
	if !ok {
		return
	}

	if err := h.adminUsecase.SetDoctorActive(r.Context(), doctorID, flag); err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to update doctor status")
		return
	}

	response.Success(w, http.StatusOK, "Doctor status updated", nil)
}

func (h *AdminHandler) VerifyQualification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qualificationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid qualification ID", nil)
		return
	}

	flag, ok := h.flag(w, r)
	if !ok {
		return
	}

	if err := h.adminUsecase.VerifyQualification(r.Context(), qualificationID, flag); err != nil {
		if err == usecase.ErrQualificationNotFound {
			response.NotFound(w, "Qualification not found")
			return
		}
		response.InternalServerError(w, "Failed to update qualification")
		return
	}

	response.Success(w, http.StatusOK, "Qualification updated", nil)
}

func (h *AdminHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req dto.CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	city, err := h.adminUsecase.CreateCity(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrCityNameTaken {
			response.Conflict(w, "City already exists")
			return
		}
		response.InternalServerError(w, "Failed to create city")
		return
	}

	response.Success(w, http.StatusCreated, "City created successfully", city)
}

func (h *AdminHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.adminUsecase.GetCities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get cities")
		return
	}

	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}

func (h *AdminHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cityID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid city ID", nil)
		return
	}

	var req dto.CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	city, err := h.adminUsecase.UpdateCity(r.Context(), cityID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		case usecase.ErrCityNameTaken:
			response.Conflict(w, "City already exists")
		default:
			response.InternalServerError(w, "Failed to update city")
		}
		return
	}

	response.Success(w, http.StatusOK, "City updated successfully", city)
}

func (h *AdminHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cityID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid city ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteCity(r.Context(), cityID); err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		case usecase.ErrCityInUse:
			response.Conflict(w, "City is referenced by doctor profiles")
		default:
			response.InternalServerError(w, "Failed to delete city")
		}
		return
	}

	response.Success(w, http.StatusOK, "City deleted successfully", nil)
}

// SetArticlePublished publishes or unpublishes a doctor's article
func (h *AdminHandler) SetArticlePublished(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	flag, ok := h.flag(w, r)
	if !ok {
		return
	}

	if err := h.adminUsecase.SetArticlePublished(r.Context(), articleID, flag); err != nil {
		if err == usecase.ErrArticleNotFound {
			response.NotFound(w, "Article not found")
			return
		}
		response.InternalServerError(w, "Failed to update article")
		return
	}

	response.Success(w, http.StatusOK, "Article updated", nil)
}

func (h *AdminHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.adminUsecase.GetPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetAuditTrail returns the most recent audit entries, newest first
func (h *AdminHandler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.adminUsecase.GetAuditTrail(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit trail")
		return
	}

	response.Success(w, http.StatusOK, "Audit trail retrieved successfully", logs)
}

func (h *AdminHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) flag(w http.ResponseWriter, r *http.Request) (bool, bool) {
	var req setFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false, false
	}
	return *req.Value, true
}
