package models

import (
	"time"
)

// Favorite defines a polymorphic bookmark row in the 'favorites' table
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ItemType  ItemType  `json:"itemType" db:"item_type" example:"event"`
	ItemID    int64     `json:"itemId" db:"item_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
