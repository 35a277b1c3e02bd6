// File: database/repository/comment/comment_mongo.go
package commentRepo

import (
	"context"
	"fmt"
	"time"

	"linkup/database"
	"linkup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCommentRepo implements CommentRepository using MongoDB.
type MongoCommentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommentRepo creates a new instance of CommentRepository using MongoDB.
func NewMongoCommentRepo() CommentRepository {
	return &MongoCommentRepo{coll: database.Collection("comments")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a comment by its unique ID.
func (r *MongoCommentRepo) GetByID(id string) (*models.Comment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var comment models.Comment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&comment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comment with id %s: %w", id, err)
	}
	return &comment, nil
}
