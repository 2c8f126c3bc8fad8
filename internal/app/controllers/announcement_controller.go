package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// CreateAnnouncement godoc
// @Summary Publish an announcement
// @Description Creates an announcement. Faculty and admin only. Priority defaults to medium.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /announcements [post]
func (ctrl *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	announcement, err := ctrl.announcementService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(announcement))
}

// ListAnnouncements godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param priority query string false "Filter by priority" Enums(low, medium, high, urgent)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements [get]
func (ctrl *AnnouncementController) ListAnnouncements(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)
	priority := models.Priority(c.Query("priority"))

	announcements, total, err := ctrl.announcementService.List(c.Request.Context(), priority, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedAPIResponse(
		announcements, helpers.NewPaginationInfo(total, page, size)))
}

// GetAnnouncement godoc
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [get]
func (ctrl *AnnouncementController) GetAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	announcement, err := ctrl.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(announcement))
}

// UpdateAnnouncement godoc
// @Summary Update an announcement
// @Description Updates an announcement. Author or admin only.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Announcement details"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [put]
func (ctrl *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	announcement, err := ctrl.announcementService.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(announcement))
}

// DeleteAnnouncement godoc
// @Summary Delete an announcement
// @Description Deletes an announcement and any favorites pointing at it. Author or admin only.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [delete]
func (ctrl *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.announcementService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Announcement deleted successfully"}))
}
