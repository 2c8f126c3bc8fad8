package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// FavoriteController handles bookmark endpoints
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController creates a new favorite controller
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// CreateFavorite godoc
// @Summary Favorite an item
// @Description Bookmarks an event or announcement for the caller
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFavoriteRequest true "Item reference"
// @Success 201 {object} dto.APIResponse{data=models.Favorite}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /favorites [post]
func (ctrl *FavoriteController) CreateFavorite(c *gin.Context) {
	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	favorite, err := ctrl.favoriteService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(favorite))
}

// ListFavorites godoc
// @Summary List own favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Favorite}
// @Router /favorites [get]
func (ctrl *FavoriteController) ListFavorites(c *gin.Context) {
	actor := middleware.GetActor(c)

	favorites, err := ctrl.favoriteService.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(favorites))
}

// DeleteFavorite godoc
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Favorite ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /favorites/{id} [delete]
func (ctrl *FavoriteController) DeleteFavorite(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.favoriteService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Favorite removed"}))
}
