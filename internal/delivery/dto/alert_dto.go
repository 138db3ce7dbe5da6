package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type AlertResponse struct {
	ID             uuid.UUID  `json:"id"`
	AlertType      string     `json:"alert_type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Recommendation string     `json:"recommendation,omitempty"`
	Priority       string     `json:"priority"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	Link           string     `json:"link,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AlertListResponse struct {
	Alerts      []AlertResponse `json:"alerts"`
	Total       int             `json:"total"`
	UnreadCount int             `json:"unread_count"`
}

type GenerateAlertsResponse struct {
	Generated int `json:"generated"`
}
