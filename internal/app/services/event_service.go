package services

import (
	"context"
	"errors"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// EventService handles event submission, the approval workflow, and RSVPs
type EventService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateEventRequest) (*models.Event, error)
	GetByID(ctx context.Context, actor Actor, id int64) (*models.Event, error)
	List(ctx context.Context, actor Actor, filter dto.EventListFilter) ([]*models.Event, int64, error)
	Update(ctx context.Context, actor Actor, id int64, req dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Approve(ctx context.Context, actor Actor, id int64) (*models.Event, error)
	Reject(ctx context.Context, actor Actor, id int64) (*models.Event, error)
	Register(ctx context.Context, actor Actor, eventID int64) error
	Unregister(ctx context.Context, actor Actor, eventID int64) error
	ListRegistrations(ctx context.Context, eventID int64) ([]*models.EventRegistration, error)
	ListCategories(ctx context.Context) ([]*models.EventCategory, error)
}

type eventStore interface {
	Create(ctx context.Context, event *models.Event) error
	CreateApproved(ctx context.Context, event *models.Event, message string) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, filter repositories.EventFilter, offset uint64, limit int) ([]*models.Event, error)
	Count(ctx context.Context, filter repositories.EventFilter) (int64, error)
	Update(ctx context.Context, event *models.Event) error
	Approve(ctx context.Context, eventID, approverID int64, message string) (bool, error)
	Reject(ctx context.Context, eventID, approverID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type categoryStore interface {
	GetByID(ctx context.Context, id int64) (*models.EventCategory, error)
	GetAll(ctx context.Context) ([]*models.EventCategory, error)
}

type registrationStore interface {
	Register(ctx context.Context, eventID, userID int64) error
	Unregister(ctx context.Context, eventID, userID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]*models.EventRegistration, error)
}

type advisorLookup interface {
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}

type eventService struct {
	eventRepo        eventStore
	categoryRepo     categoryStore
	registrationRepo registrationStore
	userRepo         advisorLookup
}

// NewEventService creates a new event service
func NewEventService(eventRepo eventStore, categoryRepo categoryStore, registrationRepo registrationStore, userRepo advisorLookup) EventService {
	return &eventService{
		eventRepo:        eventRepo,
		categoryRepo:     categoryRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
	}
}

func notificationMessage(title string) string {
	return "New event posted: " + title
}

// resolveAdvisor maps a category to the user account behind its advisor uid.
// Categories without a matching account still get events; they just have no
// assigned approver, so only admins can act on them.
func (s *eventService) resolveAdvisor(ctx context.Context, category *models.EventCategory) (advisorID *int64, advisorEmail string) {
	if category.AdvisorUID == "" {
		return nil, ""
	}

	advisor, err := s.userRepo.GetByUID(ctx, category.AdvisorUID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Str("advisorUid", category.AdvisorUID).Msg("Failed to resolve category advisor")
		}
		return nil, ""
	}

	return &advisor.ID, advisor.Email
}

// Create submits a new event. Student submissions start pending; faculty and
// admin submissions are approved immediately, which fans out notifications.
func (s *eventService) Create(ctx context.Context, actor Actor, req dto.CreateEventRequest) (*models.Event, error) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, apperrors.NewBadRequestError("endDatetime must be after startDatetime")
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	advisorID, advisorEmail := s.resolveAdvisor(ctx, category)

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      req.Location,
		Capacity:      req.Capacity,
		CategoryID:    req.CategoryID,
		CreatedBy:     actor.UserID,
		AdvisorID:     advisorID,
		AdvisorEmail:  advisorEmail,
		Status:        models.EventStatusPending,
	}

	if actor.IsStaff() {
		event.Status = models.EventStatusApproved
		approverID := actor.UserID
		event.ApprovedBy = &approverID

		if err := s.eventRepo.CreateApproved(ctx, event, notificationMessage(event.Title)); err != nil {
			return nil, err
		}
	} else {
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("eventId", event.ID).Int64("createdBy", actor.UserID).
		Str("status", string(event.Status)).Msg("Event created")

	return event, nil
}

// GetByID retrieves an event. Pending and rejected events are hidden from
// everyone except their creator and staff.
func (s *eventService) GetByID(ctx context.Context, actor Actor, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventStatusApproved && event.CreatedBy != actor.UserID && !actor.IsStaff() {
		return nil, apperrors.ErrEventNotFound
	}

	return event, nil
}

// List retrieves a page of events visible to the actor
func (s *eventService) List(ctx context.Context, actor Actor, filter dto.EventListFilter) ([]*models.Event, int64, error) {
	repoFilter := repositories.EventFilter{
		Status:        filter.Status,
		CategoryID:    filter.CategoryID,
		Upcoming:      filter.Upcoming,
		ViewerID:      actor.UserID,
		ViewerIsStaff: actor.IsStaff(),
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	events, err := s.eventRepo.List(ctx, repoFilter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.eventRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update edits an event. The creator may edit while the event is still
// pending; admins may edit at any time.
func (s *eventService) Update(ctx context.Context, actor Actor, id int64, req dto.UpdateEventRequest) (*models.Event, error) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, apperrors.NewBadRequestError("endDatetime must be after startDatetime")
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		if event.CreatedBy != actor.UserID {
			return nil, apperrors.ErrPermissionDenied
		}
		if event.Status != models.EventStatusPending {
			return nil, apperrors.NewForbiddenError("only pending events can be edited by their creator")
		}
	}

	if req.CategoryID != event.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		event.AdvisorID, event.AdvisorEmail = s.resolveAdvisor(ctx, category)
		event.CategoryID = req.CategoryID
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartDatetime = req.StartDatetime
	event.EndDatetime = req.EndDatetime
	event.Location = req.Location
	event.Capacity = req.Capacity

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event. Only the creator or an admin may delete.
func (s *eventService) Delete(ctx context.Context, actor Actor, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if event.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("eventId", id).Int64("deletedBy", actor.UserID).Msg("Event deleted")
	return nil
}

// canModerate reports whether the actor may approve or reject the event:
// admins always, faculty only when they are the category's assigned advisor.
func canModerate(actor Actor, event *models.Event) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.RoleID == models.RoleIDFaculty && event.AdvisorID != nil && *event.AdvisorID == actor.UserID {
		return true
	}
	return false
}

// Approve transitions a pending event to approved and notifies every user
// except the creator. Approving an already-approved event succeeds without
// inserting duplicate notifications.
func (s *eventService) Approve(ctx context.Context, actor Actor, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModerate(actor, event) {
		return nil, apperrors.ErrPermissionDenied
	}

	alreadyApproved, err := s.eventRepo.Approve(ctx, id, actor.UserID, notificationMessage(event.Title))
	if err != nil {
		return nil, err
	}

	if !alreadyApproved {
		logger.Info().Int64("eventId", id).Int64("approvedBy", actor.UserID).Msg("Event approved")
	}

	return s.eventRepo.GetByID(ctx, id)
}

// Reject transitions a pending event to rejected. No notifications are sent.
func (s *eventService) Reject(ctx context.Context, actor Actor, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModerate(actor, event) {
		return nil, apperrors.ErrPermissionDenied
	}

	alreadyRejected, err := s.eventRepo.Reject(ctx, id, actor.UserID)
	if err != nil {
		return nil, err
	}

	if !alreadyRejected {
		logger.Info().Int64("eventId", id).Int64("rejectedBy", actor.UserID).Msg("Event rejected")
	}

	return s.eventRepo.GetByID(ctx, id)
}

// Register RSVPs the actor to an approved event with free capacity
func (s *eventService) Register(ctx context.Context, actor Actor, eventID int64) error {
	return s.registrationRepo.Register(ctx, eventID, actor.UserID)
}

// Unregister withdraws the actor's RSVP
func (s *eventService) Unregister(ctx context.Context, actor Actor, eventID int64) error {
	return s.registrationRepo.Unregister(ctx, eventID, actor.UserID)
}

// ListRegistrations retrieves the attendee list for an event
func (s *eventService) ListRegistrations(ctx context.Context, eventID int64) ([]*models.EventRegistration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.registrationRepo.ListByEvent(ctx, eventID)
}

// ListCategories retrieves all event categories
func (s *eventService) ListCategories(ctx context.Context) ([]*models.EventCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}
