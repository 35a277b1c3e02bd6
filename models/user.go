// File: linkup/models/user.go
package models

import "time"

// User is the slice of the account document this service reads and writes.
// The account record itself is owned by the identity service; only the
// notification preference fields are mutated here.
type User struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`

	// NotificationPauseUntil suppresses push delivery (never persistence)
	// while it is in the future. Cleared lazily on the next dispatch after
	// it expires.
	NotificationPauseUntil *time.Time `bson:"notificationPauseUntil,omitempty" json:"notificationPauseUntil,omitempty"`

	// PushTokens holds the registered FCM device tokens, one per device.
	PushTokens []string `bson:"pushTokens,omitempty" json:"pushTokens,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
