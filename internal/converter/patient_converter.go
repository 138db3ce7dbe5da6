package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity + User entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile, user *entity.User) *dto.PatientResponse {
	if profile == nil || user == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		NationalID:  profile.NationalID,
		PhoneNumber: profile.PhoneNumber,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		Gender:      profile.Gender,
		Address:     profile.Address,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to DTOs.
// The User relation must be preloaded.
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(profiles))
	for i := range profiles {
		resp := PatientProfileToResponse(&profiles[i], &profiles[i].User)
		if resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
