package dto

import (
	"github.com/campushub/campushub/internal/app/models"
)

// CreateFavoriteRequest represents a bookmark creation request
type CreateFavoriteRequest struct {
	ItemType models.ItemType `json:"itemType" binding:"required,oneof=event announcement"`
	ItemID   int64           `json:"itemId" binding:"required,min=1"`
}
