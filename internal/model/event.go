package model

import "time"

// Event represents a room booking. HostID references the user who created
// the event; it is always set server-side from the authenticated caller.
type Event struct {
	ID          int64
	Name        string
	DateStart   time.Time
	DateEnd     time.Time
	RoomID      int64
	GroupID     int64
	Description string
	StatusID    int64
	HostID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventRequest represents an event create or update payload. StatusID may
// be zero on create, in which case the default status applies.
type EventRequest struct {
	Name        string    `json:"name"`
	DateStart   time.Time `json:"dateStart"`
	DateEnd     time.Time `json:"dateEnd"`
	RoomID      int64     `json:"roomId"`
	GroupID     int64     `json:"groupId"`
	Description string    `json:"description"`
	StatusID    int64     `json:"statusId"`
}

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateStart   time.Time `json:"dateStart"`
	DateEnd     time.Time `json:"dateEnd"`
	RoomID      int64     `json:"roomId"`
	GroupID     int64     `json:"groupId"`
	Description string    `json:"description"`
	StatusID    int64     `json:"statusId"`
	HostID      int64     `json:"hostId"`
}

func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		DateStart:   e.DateStart,
		DateEnd:     e.DateEnd,
		RoomID:      e.RoomID,
		GroupID:     e.GroupID,
		Description: e.Description,
		StatusID:    e.StatusID,
		HostID:      e.HostID,
	}
}
