package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// Controllers bundles all HTTP controllers for route registration
type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Event        *EventController
	Announcement *AnnouncementController
	Favorite     *FavoriteController
	Notification *NotificationController
}

// NewControllers creates the controller set over the service layer
func NewControllers(
	authService services.AuthService,
	userService services.UserService,
	eventService services.EventService,
	announcementService services.AnnouncementService,
	favoriteService services.FavoriteService,
	notificationService services.NotificationService,
) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(authService),
		User:         NewUserController(userService),
		Event:        NewEventController(eventService),
		Announcement: NewAnnouncementController(announcementService),
		Favorite:     NewFavoriteController(favoriteService),
		Notification: NewNotificationController(notificationService),
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
