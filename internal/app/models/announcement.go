package models

import (
	"time"
)

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Library hours extended"`
	Content   string    `json:"content" db:"content"`
	Priority  Priority  `json:"priority" db:"priority" example:"medium"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
