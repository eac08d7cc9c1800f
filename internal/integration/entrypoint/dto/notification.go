// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts domain notifications to their DTO.
func ToNotificationListResponse(notifications []entity.Notification) NotificationListResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationResponse{
			Title:       n.Title,
			Description: n.Description,
			Severity:    string(n.Severity),
			CreatedAt:   n.CreatedAt,
		}
	}
	return NotificationListResponse{Notifications: out}
}
