package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// FamilyMemberToResponse converts a FamilyMember entity to FamilyMemberResponse DTO
func FamilyMemberToResponse(member *entity.FamilyMember) *dto.FamilyMemberResponse {
	if member == nil {
		return nil
	}

	return &dto.FamilyMemberResponse{
		ID:           member.ID,
		FullName:     member.FullName,
		Relationship: member.Relationship,
		Age:          member.Age,
		HealthStatus: member.HealthStatus,
		Conditions:   member.Conditions,
		DiagnosisAge: member.DiagnosisAge,
		MedicalNotes: member.MedicalNotes,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}

// FamilyMembersToResponses converts a slice of FamilyMember entities to DTOs
func FamilyMembersToResponses(members []entity.FamilyMember) []dto.FamilyMemberResponse {
	responses := make([]dto.FamilyMemberResponse, len(members))
	for i, member := range members {
		resp := FamilyMemberToResponse(&member)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
