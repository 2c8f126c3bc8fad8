package services

import (
	"context"
	"errors"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// FavoriteService handles polymorphic bookmarks over events and announcements
type FavoriteService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateFavoriteRequest) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}

type favoriteStore interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByID(ctx context.Context, id int64) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type favoriteEventLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

type favoriteAnnouncementLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
}

type favoriteService struct {
	favoriteRepo     favoriteStore
	eventRepo        favoriteEventLookup
	announcementRepo favoriteAnnouncementLookup
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo favoriteStore, eventRepo favoriteEventLookup, announcementRepo favoriteAnnouncementLookup) FavoriteService {
	return &favoriteService{
		favoriteRepo:     favoriteRepo,
		eventRepo:        eventRepo,
		announcementRepo: announcementRepo,
	}
}

// Create bookmarks an event or announcement for the actor. The referenced
// item must exist.
func (s *favoriteService) Create(ctx context.Context, actor Actor, req dto.CreateFavoriteRequest) (*models.Favorite, error) {
	switch req.ItemType {
	case models.ItemTypeEvent:
		if _, err := s.eventRepo.GetByID(ctx, req.ItemID); err != nil {
			if errors.Is(err, apperrors.ErrEventNotFound) {
				return nil, apperrors.NewResourceNotFoundError("favorited event not found")
			}
			return nil, err
		}
	case models.ItemTypeAnnouncement:
		if _, err := s.announcementRepo.GetByID(ctx, req.ItemID); err != nil {
			if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
				return nil, apperrors.NewResourceNotFoundError("favorited announcement not found")
			}
			return nil, err
		}
	default:
		return nil, apperrors.NewBadRequestError("itemType must be event or announcement")
	}

	favorite := &models.Favorite{
		UserID:   actor.UserID,
		ItemType: req.ItemType,
		ItemID:   req.ItemID,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// ListByUser retrieves a user's favorites, newest first
func (s *favoriteService) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

// Delete removes a favorite. Favorites belonging to other users are reported
// as missing rather than forbidden.
func (s *favoriteService) Delete(ctx context.Context, actor Actor, id int64) error {
	favorite, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if favorite.UserID != actor.UserID {
		return apperrors.ErrFavoriteNotFound
	}

	return s.favoriteRepo.Delete(ctx, id)
}
