package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events  map[int64]*models.Event
	nextID  int64
	fanOuts []string
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[int64]*models.Event), nextID: 1}
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) CreateApproved(ctx context.Context, event *models.Event, message string) error {
	if err := f.Create(ctx, event); err != nil {
		return err
	}
	f.fanOuts = append(f.fanOuts, message)
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventStore) List(_ context.Context, filter repositories.EventFilter, _ uint64, _ int) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range f.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if !filter.ViewerIsStaff && event.Status != models.EventStatusApproved && event.CreatedBy != filter.ViewerID {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (f *fakeEventStore) Count(ctx context.Context, filter repositories.EventFilter) (int64, error) {
	events, err := f.List(ctx, filter, 0, 0)
	return int64(len(events)), err
}

func (f *fakeEventStore) Update(_ context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) Approve(_ context.Context, eventID, approverID int64, message string) (bool, error) {
	event, ok := f.events[eventID]
	if !ok {
		return false, apperrors.ErrEventNotFound
	}
	switch event.Status {
	case models.EventStatusApproved:
		return true, nil
	case models.EventStatusRejected:
		return false, apperrors.ErrEventRejected
	}
	event.Status = models.EventStatusApproved
	event.ApprovedBy = &approverID
	f.fanOuts = append(f.fanOuts, message)
	return false, nil
}

func (f *fakeEventStore) Reject(_ context.Context, eventID, approverID int64) (bool, error) {
	event, ok := f.events[eventID]
	if !ok {
		return false, apperrors.ErrEventNotFound
	}
	if event.Status == models.EventStatusRejected {
		return true, nil
	}
	if event.Status != models.EventStatusPending {
		return false, apperrors.ErrEventNotPending
	}
	event.Status = models.EventStatusRejected
	event.ApprovedBy = &approverID
	return false, nil
}

func (f *fakeEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[int64]*models.EventCategory
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id int64) (*models.EventCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryStore) GetAll(_ context.Context) ([]*models.EventCategory, error) {
	var out []*models.EventCategory
	for _, category := range f.categories {
		out = append(out, category)
	}
	return out, nil
}

type fakeRegistrationStore struct {
	registered map[int64][]int64
}

func (f *fakeRegistrationStore) Register(_ context.Context, eventID, userID int64) error {
	f.registered[eventID] = append(f.registered[eventID], userID)
	return nil
}

func (f *fakeRegistrationStore) Unregister(_ context.Context, eventID, userID int64) error {
	for i, id := range f.registered[eventID] {
		if id == userID {
			f.registered[eventID] = append(f.registered[eventID][:i], f.registered[eventID][i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRegistrationAbsent
}

func (f *fakeRegistrationStore) ListByEvent(_ context.Context, eventID int64) ([]*models.EventRegistration, error) {
	var out []*models.EventRegistration
	for _, userID := range f.registered[eventID] {
		out = append(out, &models.EventRegistration{EventID: eventID, UserID: userID})
	}
	return out, nil
}

type fakeAdvisorLookup struct {
	byUID map[string]*models.User
}

func (f *fakeAdvisorLookup) GetByUID(_ context.Context, uid string) (*models.User, error) {
	user, ok := f.byUID[uid]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

const (
	advisorUserID = int64(7)
	studentID     = int64(11)
	facultyID     = int64(12)
	adminID       = int64(13)
)

var (
	studentActor = Actor{UserID: studentID, RoleID: models.RoleIDStudent}
	facultyActor = Actor{UserID: facultyID, RoleID: models.RoleIDFaculty}
	advisorActor = Actor{UserID: advisorUserID, RoleID: models.RoleIDFaculty}
	adminActor   = Actor{UserID: adminID, RoleID: models.RoleIDAdmin}
)

func newTestEventService() (EventService, *fakeEventStore) {
	eventStore := newFakeEventStore()
	categories := &fakeCategoryStore{categories: map[int64]*models.EventCategory{
		1: {ID: 1, Name: "Academic", AdvisorUID: "fac2001"},
		2: {ID: 2, Name: "Social", AdvisorUID: ""},
	}}
	registrations := &fakeRegistrationStore{registered: make(map[int64][]int64)}
	advisors := &fakeAdvisorLookup{byUID: map[string]*models.User{
		"fac2001": {ID: advisorUserID, UserUID: "fac2001", Email: "advisor@campus.edu", RoleID: models.RoleIDFaculty},
	}}
	return NewEventService(eventStore, categories, registrations, advisors), eventStore
}

func createEventRequest(categoryID int64) dto.CreateEventRequest {
	start := time.Now().Add(48 * time.Hour)
	return dto.CreateEventRequest{
		Title:         "Career Fair",
		Description:   "Annual career fair",
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		Location:      "Main Hall",
		Capacity:      100,
		CategoryID:    categoryID,
	}
}

func TestCreateEventStudentStartsPending(t *testing.T) {
	svc, store := newTestEventService()

	event, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusPending, event.Status)
	assert.Nil(t, event.ApprovedBy)
	assert.Empty(t, store.fanOuts, "pending events must not notify anyone")

	require.NotNil(t, event.AdvisorID)
	assert.Equal(t, advisorUserID, *event.AdvisorID)
	assert.Equal(t, "advisor@campus.edu", event.AdvisorEmail)
}

func TestCreateEventFacultyApprovedImmediately(t *testing.T) {
	svc, store := newTestEventService()

	event, err := svc.Create(context.Background(), facultyActor, createEventRequest(1))
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusApproved, event.Status)
	require.NotNil(t, event.ApprovedBy)
	assert.Equal(t, facultyID, *event.ApprovedBy)
	require.Len(t, store.fanOuts, 1)
	assert.Equal(t, "New event posted: Career Fair", store.fanOuts[0])
}

func TestCreateEventAdminApprovedImmediately(t *testing.T) {
	svc, store := newTestEventService()

	event, err := svc.Create(context.Background(), adminActor, createEventRequest(2))
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusApproved, event.Status)
	assert.Len(t, store.fanOuts, 1)
	assert.Nil(t, event.AdvisorID, "category without advisor uid has no assigned approver")
}

func TestCreateEventEndBeforeStart(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventRequest(1)
	req.EndDatetime = req.StartDatetime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), studentActor, req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateEventUnknownCategory(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.Create(context.Background(), studentActor, createEventRequest(99))
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}

func TestApprovePermissions(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"assigned advisor", advisorActor, nil},
		{"admin", adminActor, nil},
		{"other faculty", facultyActor, apperrors.ErrPermissionDenied},
		{"student", studentActor, apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestEventService()
			created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
			require.NoError(t, err)

			approved, err := svc.Approve(context.Background(), tt.actor, created.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.EventStatusPending, store.events[created.ID].Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.EventStatusApproved, approved.Status)
			require.Len(t, store.fanOuts, 1)
			assert.Equal(t, "New event posted: Career Fair", store.fanOuts[0])
		})
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	svc, store := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), adminActor, created.ID)
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	assert.Len(t, store.fanOuts, 1, "repeat approval must not fan out again")
}

func TestRejectDoesNotNotify(t *testing.T) {
	svc, store := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), advisorActor, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusRejected, rejected.Status)
	assert.Empty(t, store.fanOuts)
}

func TestApproveRejectedEvent(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), adminActor, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventRejected)
}

func TestGetByIDHidesPendingFromOthers(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), Actor{UserID: 99, RoleID: models.RoleIDStudent}, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	event, err := svc.GetByID(context.Background(), studentActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, event.ID)

	_, err = svc.GetByID(context.Background(), facultyActor, created.ID)
	assert.NoError(t, err)
}

func TestUpdateEventAuthorization(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	update := createEventRequest(1)
	update.Title = "Career Fair 2026"

	// Creator may edit while pending
	updated, err := svc.Update(context.Background(), studentActor, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Career Fair 2026", updated.Title)

	// Other users may not
	_, err = svc.Update(context.Background(), Actor{UserID: 99, RoleID: models.RoleIDStudent}, created.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Once approved the creator loses edit rights, admins keep them
	_, err = svc.Approve(context.Background(), adminActor, created.ID)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), studentActor, created.ID, update)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Update(context.Background(), adminActor, created.ID, update)
	assert.NoError(t, err)
}

func TestDeleteEventAuthorization(t *testing.T) {
	svc, store := newTestEventService()

	created, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), Actor{UserID: 99, RoleID: models.RoleIDStudent}, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Delete(context.Background(), studentActor, created.ID)
	require.NoError(t, err)
	assert.Empty(t, store.events)
}

func TestListVisibility(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.Create(context.Background(), studentActor, createEventRequest(1))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), facultyActor, createEventRequest(1))
	require.NoError(t, err)

	// The creator sees their own pending event plus the approved one
	events, total, err := svc.List(context.Background(), studentActor, dto.EventListFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, events, 2)

	// Another student only sees the approved event
	events, total, err = svc.List(context.Background(),
		Actor{UserID: 99, RoleID: models.RoleIDStudent}, dto.EventListFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventStatusApproved, events[0].Status)

	// Staff see everything
	_, total, err = svc.List(context.Background(), adminActor, dto.EventListFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
