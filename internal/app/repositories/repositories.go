package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	CategoryRepository     *CategoryRepository
	EventRepository        *EventRepository
	RegistrationRepository *RegistrationRepository
	AnnouncementRepository *AnnouncementRepository
	FavoriteRepository     *FavoriteRepository
	NotificationRepository *NotificationRepository
	RefreshTokenRepository *RefreshTokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		EventRepository:        NewEventRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		FavoriteRepository:     NewFavoriteRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		RefreshTokenRepository: NewRefreshTokenRepository(db),
	}
}
