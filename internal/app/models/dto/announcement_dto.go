package dto

import (
	"github.com/campushub/campushub/internal/app/models"
)

// CreateAnnouncementRequest represents an announcement creation request
type CreateAnnouncementRequest struct {
	Title    string          `json:"title" binding:"required,min=3,max=200"`
	Content  string          `json:"content" binding:"required"`
	Priority models.Priority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateAnnouncementRequest mirrors CreateAnnouncementRequest
type UpdateAnnouncementRequest = CreateAnnouncementRequest
