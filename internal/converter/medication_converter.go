package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// MedicationToResponse converts a Medication entity to MedicationResponse DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	response := &dto.MedicationResponse{
		ID:             medication.ID,
		PatientID:      medication.PatientID,
		DoctorID:       medication.DoctorID,
		MedicationName: medication.MedicationName,
		Dosage:         medication.Dosage,
		Frequency:      medication.Frequency,
		Notes:          medication.Notes,
		StartDate:      medication.StartDate.Format("2006-01-02"),
		IsActive:       medication.IsActive,
		CreatedAt:      medication.CreatedAt,
		UpdatedAt:      medication.UpdatedAt,
	}

	if medication.EndDate != nil {
		response.EndDate = medication.EndDate.Format("2006-01-02")
	}

	return response
}

// MedicationsToResponses converts a slice of Medication entities to DTOs
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		resp := MedicationToResponse(&medication)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
