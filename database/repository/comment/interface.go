package commentRepo

import "linkup/models"

// CommentRepository defines the comment-store access dispatch needs.
// Comment reactions are persisted against the comment's parent post, so the
// only read here is the ID-to-parent lookup.
type CommentRepository interface {
	// GetByID retrieves a comment by its unique ID. Returns (nil, nil) when
	// the comment does not exist.
	GetByID(id string) (*models.Comment, error)
}
