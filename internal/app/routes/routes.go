package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campushub/campushub/internal/app/controllers"
	"github.com/campushub/campushub/internal/middleware"
)

// RegisterRoutes wires all API routes onto the engine
func RegisterRoutes(router *gin.Engine, ctrl *controllers.Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.RefreshToken)
		auth.GET("/me", authMW.Authenticate(), ctrl.Auth.GetProfile)
	}

	users := api.Group("/users", authMW.Authenticate())
	{
		users.GET("", authMW.RequireAdmin(), ctrl.User.ListUsers)
		users.GET("/:id", ctrl.User.GetUser)
		users.PUT("/:id", ctrl.User.UpdateUser)
		users.POST("/:id/deactivate", authMW.RequireAdmin(), ctrl.User.DeactivateUser)
		users.POST("/:id/activate", authMW.RequireAdmin(), ctrl.User.ActivateUser)
		users.DELETE("/:id", authMW.RequireAdmin(), ctrl.User.DeleteUser)
	}

	api.GET("/categories", authMW.Authenticate(), ctrl.Event.ListCategories)

	events := api.Group("/events", authMW.Authenticate())
	{
		events.POST("", ctrl.Event.CreateEvent)
		events.GET("", ctrl.Event.ListEvents)
		events.GET("/:id", ctrl.Event.GetEvent)
		events.PUT("/:id", ctrl.Event.UpdateEvent)
		events.DELETE("/:id", ctrl.Event.DeleteEvent)
		events.POST("/:id/approve", authMW.RequireStaff(), ctrl.Event.ApproveEvent)
		events.POST("/:id/reject", authMW.RequireStaff(), ctrl.Event.RejectEvent)
		events.POST("/:id/register", ctrl.Event.RegisterForEvent)
		events.DELETE("/:id/register", ctrl.Event.UnregisterFromEvent)
		events.GET("/:id/registrations", authMW.RequireStaff(), ctrl.Event.ListRegistrations)
	}

	announcements := api.Group("/announcements", authMW.Authenticate())
	{
		announcements.GET("", ctrl.Announcement.ListAnnouncements)
		announcements.GET("/:id", ctrl.Announcement.GetAnnouncement)
		announcements.POST("", authMW.RequireStaff(), ctrl.Announcement.CreateAnnouncement)
		announcements.PUT("/:id", authMW.RequireStaff(), ctrl.Announcement.UpdateAnnouncement)
		announcements.DELETE("/:id", authMW.RequireStaff(), ctrl.Announcement.DeleteAnnouncement)
	}

	favorites := api.Group("/favorites", authMW.Authenticate())
	{
		favorites.POST("", ctrl.Favorite.CreateFavorite)
		favorites.GET("", ctrl.Favorite.ListFavorites)
		favorites.DELETE("/:id", ctrl.Favorite.DeleteFavorite)
	}

	notifications := api.Group("/notifications", authMW.Authenticate())
	{
		notifications.GET("", ctrl.Notification.ListNotifications)
		notifications.GET("/unread-count", ctrl.Notification.GetUnreadCount)
		notifications.POST("/:id/read", ctrl.Notification.MarkNotificationRead)
		notifications.POST("/read-all", ctrl.Notification.MarkAllNotificationsRead)
		notifications.DELETE("/:id", ctrl.Notification.DeleteNotification)
	}
}
