package model

import "time"

// Notification represents a message delivered to a single user.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationRequest represents a notification create payload.
type NotificationRequest struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// Participant links a user to an event they take part in.
type Participant struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"userId"`
	EventID int64 `json:"eventId"`
}

// ParticipantRequest represents a join payload.
type ParticipantRequest struct {
	UserID  int64 `json:"userId"`
	EventID int64 `json:"eventId"`
}
