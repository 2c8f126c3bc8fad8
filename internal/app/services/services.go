package services

import (
	"github.com/campushub/campushub/internal/app/models"
)

// Services defined in this package:
// - AuthService: registration, login, token refresh
// - UserService: user administration and profile updates
// - EventService: event submission, approval workflow, RSVPs
// - AnnouncementService: campus announcements
// - FavoriteService: polymorphic bookmarks
// - NotificationService: per-user notification feed

// Actor identifies the authenticated caller inside the service layer
type Actor struct {
	UserID int64
	RoleID int
}

// Role returns the actor's role type
func (a Actor) Role() models.RoleType {
	return models.RoleFromID(a.RoleID)
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.RoleID == models.RoleIDAdmin
}

// IsStaff reports whether the actor is faculty or admin
func (a Actor) IsStaff() bool {
	return a.RoleID == models.RoleIDFaculty || a.RoleID == models.RoleIDAdmin
}
