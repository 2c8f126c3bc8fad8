package models

import (
	"time"
)

// EventCategory defines a category with its mapped faculty advisor.
// The advisor uid selects the faculty member responsible for approving
// student submissions in this category.
type EventCategory struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	Name       string `json:"name" db:"name" example:"Career"`
	AdvisorUID string `json:"advisorUid" db:"advisor_uid" example:"fac2001"`
}

// Event defines the event model based on the 'events' table
type Event struct {
	ID            int64       `json:"id" db:"id" example:"1"`
	Title         string      `json:"title" db:"title" example:"Career Fair"`
	Description   string      `json:"description" db:"description"`
	StartDatetime time.Time   `json:"startDatetime" db:"start_datetime"`
	EndDatetime   time.Time   `json:"endDatetime" db:"end_datetime"`
	Location      string      `json:"location" db:"location" example:"Main Hall"`
	Capacity      int         `json:"capacity" db:"capacity" example:"100"`
	CategoryID    int64       `json:"categoryId" db:"category_id" example:"1"`
	CreatedBy     int64       `json:"createdBy" db:"created_by"`
	AdvisorID     *int64      `json:"advisorId,omitempty" db:"advisor_id"`
	AdvisorEmail  string      `json:"advisorEmail,omitempty" db:"advisor_email"`
	ApprovedBy    *int64      `json:"approvedBy,omitempty" db:"approved_by"`
	Status        EventStatus `json:"status" db:"status" example:"pending"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`

	// RegisteredCount is computed on read, not stored
	RegisteredCount int `json:"registeredCount" db:"-"`
}

// EventRegistration defines an RSVP row in 'event_registrations'
type EventRegistration struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty"`
}
