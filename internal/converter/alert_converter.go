package converter

import (
	"sillah/internal/delivery/dto"
	"sillah/internal/domain/entity"
)

// AlertToResponse converts an Alert entity to AlertResponse DTO
func AlertToResponse(alert *entity.Alert) *dto.AlertResponse {
	if alert == nil {
		return nil
	}

	return &dto.AlertResponse{
		ID:             alert.ID,
		AlertType:      alert.AlertType,
		Title:          alert.Title,
		Message:        alert.Message,
		Recommendation: alert.Recommendation,
		Priority:       string(alert.Priority),
		IsRead:         alert.IsRead,
		ReadAt:         alert.ReadAt,
		Link:           alert.Link,
		CreatedAt:      alert.CreatedAt,
	}
}

// AlertsToListResponse converts a slice of Alert entities to AlertListResponse DTO
func AlertsToListResponse(alerts []entity.Alert) *dto.AlertListResponse {
	responses := make([]dto.AlertResponse, len(alerts))
	unread := 0
	for i, alert := range alerts {
		resp := AlertToResponse(&alert)
		if resp != nil {
			responses[i] = *resp
		}
		if !alert.IsRead {
			unread++
		}
	}
	return &dto.AlertListResponse{
		Alerts:      responses,
		Total:       len(responses),
		UnreadCount: unread,
	}
}
