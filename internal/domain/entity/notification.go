// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// NotificationSeverity classifies a user-facing notification.
type NotificationSeverity string

const (
	SeveritySuccess NotificationSeverity = "success"
	SeverityError   NotificationSeverity = "error"
)

// Notification is a fire-and-forget message reporting the outcome of a
// mutation to the presentation layer. The emitting layer never awaits or
// retries based on its delivery.
type Notification struct {
	Title       string
	Description string
	Severity    NotificationSeverity
	CreatedAt   time.Time
}
