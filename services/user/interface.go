package user

import (
	"time"

	userRepo "linkup/database/repository/user"
)

// UserService exposes the notification preference operations the recipient
// controls: pausing push delivery and managing device tokens.
type UserService interface {
	// PauseNotifications suppresses push delivery for the given duration and
	// returns the computed expiry.
	PauseNotifications(userID string, d time.Duration) (time.Time, error)
	// ResumeNotifications clears any active pause.
	ResumeNotifications(userID string) error
	// RegisterPushToken adds a device token for the user.
	RegisterPushToken(userID, token string) error
	// UnregisterPushToken removes a device token for the user.
	UnregisterPushToken(userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
