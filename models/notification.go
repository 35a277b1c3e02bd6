// File: linkup/models/notification.go
package models

import "time"

// Notification is a persisted in-app notification document.
// From and To are user IDs; To never equals From because self-notifications
// are suppressed before a record is created.
type Notification struct {
	ID               string    `bson:"id" json:"id"`
	From             string    `bson:"from" json:"from"`
	To               string    `bson:"to" json:"to"`
	Subject          string    `bson:"subject" json:"subject"`
	Content          string    `bson:"content" json:"content"`
	ResourceID       string    `bson:"resourceId" json:"resourceId"`
	RelatedPostID    string    `bson:"relatedPostId,omitempty" json:"relatedPostId,omitempty"`
	RelatedCommentID string    `bson:"relatedCommentId,omitempty" json:"relatedCommentId,omitempty"`
	RelatedChatID    string    `bson:"relatedChatId,omitempty" json:"relatedChatId,omitempty"`
	IsRead           bool      `bson:"isRead" json:"isRead"`
	IsDeleted        bool      `bson:"isDeleted" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
