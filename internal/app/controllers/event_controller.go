package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// EventController handles event, registration, and category endpoints
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new event controller
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent godoc
// @Summary Submit an event
// @Description Student submissions start pending; faculty and admin submissions are approved immediately and notify all other users.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	event, err := ctrl.eventService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromEvent(event)))
}

// ListEvents godoc
// @Summary List events
// @Description Lists events visible to the caller. Non-staff see approved events plus their own submissions.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (staff only sees non-approved)" Enums(pending, approved, rejected)
// @Param categoryId query int false "Filter by category"
// @Param upcoming query bool false "Only events that have not started yet"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse}
// @Router /events [get]
func (ctrl *EventController) ListEvents(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	filter := dto.EventListFilter{
		Status:   models.EventStatus(c.Query("status")),
		Upcoming: c.Query("upcoming") == "true",
		Page:     page,
		PageSize: size,
	}
	if raw := c.Query("categoryId"); raw != "" {
		if categoryID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.CategoryID = categoryID
		}
	}

	events, total, err := ctrl.eventService.List(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedAPIResponse(
		dto.FromEvents(events), helpers.NewPaginationInfo(total, page, size)))
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (ctrl *EventController) GetEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	event, err := ctrl.eventService.GetByID(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEvent(event)))
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Creators may edit their own pending events; admins may edit any event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event details"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	event, err := ctrl.eventService.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEvent(event)))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes an event with its registrations, favorites and notifications. Creator or admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.eventService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Event deleted successfully"}))
}

// ApproveEvent godoc
// @Summary Approve a pending event
// @Description Approves an event and notifies every user except the creator. Repeating the call is a no-op. Category advisor or admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /events/{id}/approve [post]
func (ctrl *EventController) ApproveEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	event, err := ctrl.eventService.Approve(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEvent(event)))
}

// RejectEvent godoc
// @Summary Reject a pending event
// @Description Rejects an event without notifying users. Category advisor or admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /events/{id}/reject [post]
func (ctrl *EventController) RejectEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	event, err := ctrl.eventService.Reject(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEvent(event)))
}

// RegisterForEvent godoc
// @Summary RSVP to an event
// @Description Registers the caller for an approved event with free capacity
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /events/{id}/register [post]
func (ctrl *EventController) RegisterForEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.eventService.Register(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{Message: "Registered successfully"}))
}

// UnregisterFromEvent godoc
// @Summary Withdraw an RSVP
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/register [delete]
func (ctrl *EventController) UnregisterFromEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.eventService.Unregister(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Registration withdrawn"}))
}

// ListRegistrations godoc
// @Summary List event attendees
// @Description Lists registrations with attendee details. Faculty and admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/registrations [get]
func (ctrl *EventController) ListRegistrations(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	registrations, err := ctrl.eventService.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, reg := range registrations {
		out = append(out, dto.FromRegistration(reg))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(out))
}

// ListCategories godoc
// @Summary List event categories
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EventCategory}
// @Router /events/categories [get]
func (ctrl *EventController) ListCategories(c *gin.Context) {
	categories, err := ctrl.eventService.ListCategories(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(categories))
}
