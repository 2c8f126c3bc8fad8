package services

import (
	"context"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// NotificationService handles the per-user notification feed
type NotificationService interface {
	List(ctx context.Context, userID int64, unreadOnly bool, page, pageSize int) ([]*models.Notification, int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
}

type notificationStore interface {
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, offset uint64, limit int) ([]*models.Notification, error)
	CountByUser(ctx context.Context, userID int64, unreadOnly bool) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

type notificationService struct {
	notificationRepo notificationStore
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo notificationStore) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// List retrieves a page of the user's notifications, newest first
func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool, page, pageSize int) ([]*models.Notification, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.notificationRepo.CountByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// UnreadCount returns the user's unread notification count
func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.CountByUser(ctx, userID, true)
}

// MarkRead marks one of the user's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, userID, id int64) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of the user's notifications as read
func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications
func (s *notificationService) Delete(ctx context.Context, userID, id int64) error {
	return s.notificationRepo.Delete(ctx, id, userID)
}
