package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// NotificationController handles notification feed endpoints
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new notification controller
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications godoc
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Notification}
// @Router /notifications [get]
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	actor := middleware.GetActor(c)
	page, size := helpers.ParsePaginationParams(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, total, err := ctrl.notificationService.List(
		c.Request.Context(), actor.UserID, unreadOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedAPIResponse(
		notifications, helpers.NewPaginationInfo(total, page, size)))
}

// GetUnreadCount godoc
// @Summary Get unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse}
// @Router /notifications/unread-count [get]
func (ctrl *NotificationController) GetUnreadCount(c *gin.Context) {
	actor := middleware.GetActor(c)

	count, err := ctrl.notificationService.UnreadCount(c.Request.Context(), actor.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.UnreadCountResponse{UnreadCount: count}))
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Description Marks one of the caller's notifications as read. Repeating the call is a no-op.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [post]
func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	actor := middleware.GetActor(c)
	if err := ctrl.notificationService.MarkRead(c.Request.Context(), actor.UserID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Notification marked as read"}))
}

// MarkAllNotificationsRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /notifications/read-all [post]
func (ctrl *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	actor := middleware.GetActor(c)

	if _, err := ctrl.notificationService.MarkAllRead(c.Request.Context(), actor.UserID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "All notifications marked as read"}))
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id} [delete]
func (ctrl *NotificationController) DeleteNotification(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	actor := middleware.GetActor(c)
	if err := ctrl.notificationService.Delete(c.Request.Context(), actor.UserID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Notification deleted"}))
}
