package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// HealthRecordToResponse converts a PersonalHealthRecord entity to HealthRecordResponse DTO
func HealthRecordToResponse(record *entity.PersonalHealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:             record.ID,
		RecordType:     string(record.RecordType),
		RiskLevel:      string(record.RiskLevel),
		Notes:          record.Notes,
		IsChronic:      record.IsChronic,
		StructuredData: record.StructuredData,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// HealthRecordsToResponses converts a slice of PersonalHealthRecord entities to DTOs
func HealthRecordsToResponses(records []entity.PersonalHealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i, record := range records {
		resp := HealthRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
