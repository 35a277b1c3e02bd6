// File: linkup/models/comment.go
package models

import "time"

// Comment is the subset of the comment document consumed by dispatch.
// Only the parent post linkage matters here; the comment store proper is
// owned by the content service.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"postId" json:"postId"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
