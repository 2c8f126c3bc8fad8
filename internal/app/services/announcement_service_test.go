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

type fakeAnnouncementStore struct {
	announcements map[int64]*models.Announcement
	nextID        int64
}

func (f *fakeAnnouncementStore) Create(_ context.Context, announcement *models.Announcement) error {
	announcement.ID = f.nextID
	f.nextID++
	f.announcements[announcement.ID] = announcement
	return nil
}

func (f *fakeAnnouncementStore) GetByID(_ context.Context, id int64) (*models.Announcement, error) {
	announcement, ok := f.announcements[id]
	if !ok {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	return announcement, nil
}

func (f *fakeAnnouncementStore) List(_ context.Context, priority models.Priority, _ uint64, _ int) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for _, announcement := range f.announcements {
		if priority != "" && announcement.Priority != priority {
			continue
		}
		out = append(out, announcement)
	}
	return out, nil
}

func (f *fakeAnnouncementStore) Count(ctx context.Context, priority models.Priority) (int64, error) {
	announcements, err := f.List(ctx, priority, 0, 0)
	return int64(len(announcements)), err
}

func (f *fakeAnnouncementStore) Update(_ context.Context, announcement *models.Announcement) error {
	if _, ok := f.announcements[announcement.ID]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	f.announcements[announcement.ID] = announcement
	return nil
}

func (f *fakeAnnouncementStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.announcements[id]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	delete(f.announcements, id)
	return nil
}

func newTestAnnouncementService() AnnouncementService {
	return NewAnnouncementService(
		&fakeAnnouncementStore{announcements: make(map[int64]*models.Announcement), nextID: 1})
}

func TestCreateAnnouncementDefaultsPriority(t *testing.T) {
	svc := newTestAnnouncementService()
	author := Actor{UserID: 5, RoleID: models.RoleIDFaculty}

	announcement, err := svc.Create(context.Background(), author, dto.CreateAnnouncementRequest{
		Title:   "Library hours extended",
		Content: "Open until midnight during finals week.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityMedium, announcement.Priority)
	assert.Equal(t, author.UserID, announcement.CreatedBy)
}

func TestCreateAnnouncementExplicitPriority(t *testing.T) {
	svc := newTestAnnouncementService()
	author := Actor{UserID: 5, RoleID: models.RoleIDFaculty}

	announcement, err := svc.Create(context.Background(), author, dto.CreateAnnouncementRequest{
		Title:    "Campus closure",
		Content:  "Campus closed due to weather.",
		Priority: models.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, announcement.Priority)
}

func TestUpdateAnnouncementAuthorOrAdmin(t *testing.T) {
	svc := newTestAnnouncementService()
	author := Actor{UserID: 5, RoleID: models.RoleIDFaculty}
	otherFaculty := Actor{UserID: 6, RoleID: models.RoleIDFaculty}
	admin := Actor{UserID: 7, RoleID: models.RoleIDAdmin}

	announcement, err := svc.Create(context.Background(), author, dto.CreateAnnouncementRequest{
		Title: "Original title", Content: "Body",
	})
	require.NoError(t, err)

	update := dto.UpdateAnnouncementRequest{Title: "Edited title", Content: "Body"}

	_, err = svc.Update(context.Background(), otherFaculty, announcement.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), author, announcement.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Edited title", updated.Title)

	_, err = svc.Update(context.Background(), admin, announcement.ID, update)
	assert.NoError(t, err)
}

func TestDeleteAnnouncementAuthorOrAdmin(t *testing.T) {
	svc := newTestAnnouncementService()
	author := Actor{UserID: 5, RoleID: models.RoleIDFaculty}
	otherFaculty := Actor{UserID: 6, RoleID: models.RoleIDFaculty}

	announcement, err := svc.Create(context.Background(), author, dto.CreateAnnouncementRequest{
		Title: "To be removed", Content: "Body",
	})
	require.NoError(t, err)

	assert.ErrorIs(t,
		svc.Delete(context.Background(), otherFaculty, announcement.ID),
		apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(context.Background(), author, announcement.ID))

	_, err = svc.GetByID(context.Background(), announcement.ID)
	assert.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
}

func TestListAnnouncementsByPriority(t *testing.T) {
	svc := newTestAnnouncementService()
	author := Actor{UserID: 5, RoleID: models.RoleIDFaculty}

	for _, priority := range []models.Priority{models.PriorityLow, models.PriorityUrgent, models.PriorityUrgent} {
		_, err := svc.Create(context.Background(), author, dto.CreateAnnouncementRequest{
			Title: "Announcement", Content: "Body", Priority: priority,
		})
		require.NoError(t, err)
	}

	_, total, err := svc.List(context.Background(), models.PriorityUrgent, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = svc.List(context.Background(), "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
