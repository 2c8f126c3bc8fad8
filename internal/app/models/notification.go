package models

import (
	"time"
)

// Notification defines a row in the 'notifications' table
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	EventID   *int64    `json:"eventId,omitempty" db:"event_id"`
	Message   string    `json:"message" db:"message" example:"New event posted: Career Fair"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
