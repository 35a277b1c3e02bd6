package userRepo

import (
	"time"

	"linkup/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines the account-store access dispatch and the preference
// endpoints need. The full account document is owned elsewhere; this interface
// only covers lookups and the two notification preference fields.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when the
	// user does not exist.
	GetByID(id string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// SetPauseUntil sets or clears the notification pause timestamp.
	// Passing nil clears it.
	SetPauseUntil(id string, until *time.Time) error
	// AddPushToken registers a device token, keeping the token set unique.
	AddPushToken(id, token string) error
	// RemovePushToken unregisters one device token.
	RemovePushToken(id, token string) error
}
