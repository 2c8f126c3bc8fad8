package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// CreateEventRequest represents an event submission
type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required,min=3,max=200"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"startDatetime" binding:"required"`
	EndDatetime   time.Time `json:"endDatetime" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	Capacity      int       `json:"capacity" binding:"required,min=1"`
	CategoryID    int64     `json:"categoryId" binding:"required,min=1"`
}

// UpdateEventRequest mirrors CreateEventRequest for full updates
type UpdateEventRequest = CreateEventRequest

// EventResponse represents an event on the wire
type EventResponse struct {
	ID              int64              `json:"id" example:"1"`
	Title           string             `json:"title" example:"Career Fair"`
	Description     string             `json:"description,omitempty"`
	StartDatetime   time.Time          `json:"startDatetime"`
	EndDatetime     time.Time          `json:"endDatetime"`
	Location        string             `json:"location" example:"Main Hall"`
	Capacity        int                `json:"capacity" example:"100"`
	CategoryID      int64              `json:"categoryId" example:"1"`
	CreatedBy       int64              `json:"createdBy" example:"4"`
	AdvisorID       *int64             `json:"advisorId,omitempty"`
	AdvisorEmail    string             `json:"advisorEmail,omitempty"`
	ApprovedBy      *int64             `json:"approvedBy,omitempty"`
	Status          models.EventStatus `json:"status" example:"pending"`
	RegisteredCount int                `json:"registeredCount" example:"17"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// FromEvent converts an event model to its response form
func FromEvent(e *models.Event) EventResponse {
	if e == nil {
		return EventResponse{}
	}
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		StartDatetime:   e.StartDatetime,
		EndDatetime:     e.EndDatetime,
		Location:        e.Location,
		Capacity:        e.Capacity,
		CategoryID:      e.CategoryID,
		CreatedBy:       e.CreatedBy,
		AdvisorID:       e.AdvisorID,
		AdvisorEmail:    e.AdvisorEmail,
		ApprovedBy:      e.ApprovedBy,
		Status:          e.Status,
		RegisteredCount: e.RegisteredCount,
		CreatedAt:       e.CreatedAt,
	}
}

// FromEvents converts a slice of event models
func FromEvents(events []*models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromEvent(e))
	}
	return out
}

// EventListFilter carries list query parameters through the service layer
type EventListFilter struct {
	Status     models.EventStatus
	CategoryID int64
	Upcoming   bool
	Page       int
	PageSize   int
}

// RegistrationResponse represents an attendee row
type RegistrationResponse struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"eventId"`
	UserID       int64     `json:"userId"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Email        string    `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// FromRegistration converts a registration model to its response form
func FromRegistration(r *models.EventRegistration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		RegisteredAt: r.CreatedAt,
	}
	if r.User != nil {
		resp.FirstName = r.User.FirstName
		resp.LastName = r.User.LastName
		resp.Email = r.User.Email
	}
	return resp
}
