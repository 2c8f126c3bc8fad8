package dto

// UnreadCountResponse reports the caller's unread notification count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount" example:"3"`
}
