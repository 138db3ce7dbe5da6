package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity + User entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile, user *entity.User) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:             profile.UserID,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		ClinicName:     profile.ClinicName,
		Biography:      profile.Biography,
	}

	if user != nil {
		response.Email = user.Email
		response.FullName = user.FullName
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs.
// The User relation must be preloaded for email and name to be populated.
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile, &profile.User)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
