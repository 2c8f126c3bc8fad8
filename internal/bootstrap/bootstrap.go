package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/campushub/internal/app/controllers"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/config"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/seed"
)

// Dependencies holds everything the HTTP server needs, wired bottom-up from
// the configuration.
type Dependencies struct {
	Config         *config.Config
	DB             *db.PostgresDB
	Controllers    *controllers.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// Initialize connects to the database, runs migrations and seeds, and builds
// the repository, service, and controller layers.
func Initialize(cfg *config.Config, migrationsDir string) (*Dependencies, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.RunMigrations(ctx, database.Pool, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seed.Run(ctx, database.Pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)

	authService := services.NewAuthService(repos.UserRepository, repos.RefreshTokenRepository, jwtService)
	userService := services.NewUserService(repos.UserRepository)
	eventService := services.NewEventService(
		repos.EventRepository, repos.CategoryRepository, repos.RegistrationRepository, repos.UserRepository)
	announcementService := services.NewAnnouncementService(repos.AnnouncementRepository)
	favoriteService := services.NewFavoriteService(
		repos.FavoriteRepository, repos.EventRepository, repos.AnnouncementRepository)
	notificationService := services.NewNotificationService(repos.NotificationRepository)

	return &Dependencies{
		Config: cfg,
		DB:     database,
		Controllers: controllers.NewControllers(
			authService, userService, eventService,
			announcementService, favoriteService, notificationService),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}, nil
}

// Close releases held resources
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
