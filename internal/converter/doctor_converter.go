package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Email:           profile.User.Email,
		FullName:        profile.User.FullName,
		LicenseNumber:   profile.LicenseNumber,
		Specialization:  profile.Specialization,
		ConsultationFee: profile.ConsultationFee.StringFixed(2),
		Biography:       profile.Biography,
		IsVerified:      profile.IsVerified,
		IsActive:        profile.User.IsActive,
	}

	if profile.City != nil {
		response.City = profile.City.Name
	}
	if len(profile.Qualifications) > 0 {
		response.Qualifications = QualificationsToResponses(profile.Qualifications)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// QualificationsToResponses converts Qualification entities to DTOs
func QualificationsToResponses(qualifications []entity.Qualification) []dto.QualificationResponse {
	responses := make([]dto.QualificationResponse, len(qualifications))
	for i, q := range qualifications {
		responses[i] = dto.QualificationResponse{
			ID:          q.ID,
			Degree:      q.Degree,
			Institution: q.Institution,
			Year:        q.Year,
			IsVerified:  q.IsVerified,
		}
	}
	return responses
}
