package services

import (
	"context"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// AnnouncementService handles campus announcements
type AnnouncementService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, priority models.Priority, page, pageSize int) ([]*models.Announcement, int64, error)
	Update(ctx context.Context, actor Actor, id int64, req dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}

type announcementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, priority models.Priority, offset uint64, limit int) ([]*models.Announcement, error)
	Count(ctx context.Context, priority models.Priority) (int64, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

type announcementService struct {
	announcementRepo announcementStore
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo announcementStore) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

// Create publishes an announcement. Priority defaults to medium.
func (s *announcementService) Create(ctx context.Context, actor Actor, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	announcement := &models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  priority,
		CreatedBy: actor.UserID,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

// GetByID retrieves an announcement
func (s *announcementService) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// List retrieves a page of announcements, optionally filtered by priority
func (s *announcementService) List(ctx context.Context, priority models.Priority, page, pageSize int) ([]*models.Announcement, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	announcements, err := s.announcementRepo.List(ctx, priority, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.announcementRepo.Count(ctx, priority)
	if err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// Update edits an announcement. Only the author or an admin may edit.
func (s *announcementService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if announcement.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	if req.Priority != "" {
		announcement.Priority = models.Priority(req.Priority)
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

// Delete removes an announcement. Only the author or an admin may delete.
func (s *announcementService) Delete(ctx context.Context, actor Actor, id int64) error {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if announcement.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	return s.announcementRepo.Delete(ctx, id)
}
