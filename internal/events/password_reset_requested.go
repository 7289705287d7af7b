package events

import "time"

const EmailNotificationTopic = "hr.notification.email.v1"

const EventTypePasswordResetRequested = "password_reset.requested"

type PasswordResetRequestedEvent struct {
	EventType        string    `json:"event_type"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	ExpiresInMinutes int       `json:"expires_in_minutes"`
	RequestedAt      time.Time `json:"requested_at"`
}
