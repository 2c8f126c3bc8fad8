package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

type fakeFavoriteStore struct {
	favorites map[int64]*models.Favorite
	nextID    int64
}

func (f *fakeFavoriteStore) Create(_ context.Context, favorite *models.Favorite) error {
	for _, existing := range f.favorites {
		if existing.UserID == favorite.UserID &&
			existing.ItemType == favorite.ItemType && existing.ItemID == favorite.ItemID {
			return apperrors.ErrFavoriteExists
		}
	}
	favorite.ID = f.nextID
	f.nextID++
	f.favorites[favorite.ID] = favorite
	return nil
}

func (f *fakeFavoriteStore) GetByID(_ context.Context, id int64) (*models.Favorite, error) {
	favorite, ok := f.favorites[id]
	if !ok {
		return nil, apperrors.ErrFavoriteNotFound
	}
	return favorite, nil
}

func (f *fakeFavoriteStore) ListByUser(_ context.Context, userID int64) ([]*models.Favorite, error) {
	var out []*models.Favorite
	for _, favorite := range f.favorites {
		if favorite.UserID == userID {
			out = append(out, favorite)
		}
	}
	return out, nil
}

func (f *fakeFavoriteStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.favorites[id]; !ok {
		return apperrors.ErrFavoriteNotFound
	}
	delete(f.favorites, id)
	return nil
}

type fakeEventLookup struct{ ids map[int64]bool }

func (f *fakeEventLookup) GetByID(_ context.Context, id int64) (*models.Event, error) {
	if !f.ids[id] {
		return nil, apperrors.ErrEventNotFound
	}
	return &models.Event{ID: id}, nil
}

type fakeAnnouncementLookup struct{ ids map[int64]bool }

func (f *fakeAnnouncementLookup) GetByID(_ context.Context, id int64) (*models.Announcement, error) {
	if !f.ids[id] {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	return &models.Announcement{ID: id}, nil
}

func newTestFavoriteService() FavoriteService {
	return NewFavoriteService(
		&fakeFavoriteStore{favorites: make(map[int64]*models.Favorite), nextID: 1},
		&fakeEventLookup{ids: map[int64]bool{1: true}},
		&fakeAnnouncementLookup{ids: map[int64]bool{5: true}},
	)
}

func TestCreateFavorite(t *testing.T) {
	svc := newTestFavoriteService()
	actor := Actor{UserID: 1, RoleID: models.RoleIDStudent}

	favorite, err := svc.Create(context.Background(), actor,
		dto.CreateFavoriteRequest{ItemType: models.ItemTypeEvent, ItemID: 1})
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, favorite.UserID)

	favorite, err = svc.Create(context.Background(), actor,
		dto.CreateFavoriteRequest{ItemType: models.ItemTypeAnnouncement, ItemID: 5})
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeAnnouncement, favorite.ItemType)
}

func TestCreateFavoriteMissingItem(t *testing.T) {
	svc := newTestFavoriteService()
	actor := Actor{UserID: 1, RoleID: models.RoleIDStudent}

	_, err := svc.Create(context.Background(), actor,
		dto.CreateFavoriteRequest{ItemType: models.ItemTypeEvent, ItemID: 99})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.Create(context.Background(), actor,
		dto.CreateFavoriteRequest{ItemType: models.ItemTypeAnnouncement, ItemID: 99})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateFavoriteDuplicate(t *testing.T) {
	svc := newTestFavoriteService()
	actor := Actor{UserID: 1, RoleID: models.RoleIDStudent}
	req := dto.CreateFavoriteRequest{ItemType: models.ItemTypeEvent, ItemID: 1}

	_, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), actor, req)
	assert.ErrorIs(t, err, apperrors.ErrFavoriteExists)
}

func TestDeleteFavoriteOwnership(t *testing.T) {
	svc := newTestFavoriteService()
	owner := Actor{UserID: 1, RoleID: models.RoleIDStudent}
	other := Actor{UserID: 2, RoleID: models.RoleIDStudent}

	favorite, err := svc.Create(context.Background(), owner,
		dto.CreateFavoriteRequest{ItemType: models.ItemTypeEvent, ItemID: 1})
	require.NoError(t, err)

	// Someone else's favorite looks like it does not exist
	err = svc.Delete(context.Background(), other, favorite.ID)
	assert.ErrorIs(t, err, apperrors.ErrFavoriteNotFound)

	err = svc.Delete(context.Background(), owner, favorite.ID)
	assert.NoError(t, err)

	favorites, err := svc.ListByUser(context.Background(), owner.UserID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
