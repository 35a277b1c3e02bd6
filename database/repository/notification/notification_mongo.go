// File: database/repository/notification/notification_mongo.go
package notifRepo

import (
	"context"
	"fmt"
	"time"

	"linkup/database"
	"linkup/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB, with
// a Redis-backed unread-count cache in front of the badge query.
type MongoNotificationRepo struct {
	coll  *mongo.Collection
	cache unreadCache
}

// NewMongoNotificationRepo creates a new NotificationRepository. Pass a nil
// cache client to run without Redis.
func NewMongoNotificationRepo(cacheClient *redis.Client) NotificationRepository {
	repo := &MongoNotificationRepo{
		coll:  database.Collection("notifications"),
		cache: unreadCache{client: cacheClient},
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the recipient feed query.
func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// liveFilter matches the recipient's records that are not soft-deleted.
func liveFilter(recipientID string) bson.M {
	return bson.M{"to": recipientID, "isDeleted": false}
}

// Create inserts a new notification record.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	r.cache.invalidate(ctx, n.To)
	return nil
}

// GetByRecipient retrieves a page of a user's notifications, newest first.
func (r *MongoNotificationRepo) GetByRecipient(recipientID string, page, limit int) ([]models.Notification, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := liveFilter(recipientID)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications for user %s: %w", recipientID, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve notifications for user %s: %w", recipientID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, 0, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}

// GetUnreadCount returns the number of unread, live records, served from the
// cache when possible.
func (r *MongoNotificationRepo) GetUnreadCount(recipientID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if count, ok := r.cache.get(ctx, recipientID); ok {
		return count, nil
	}

	filter := liveFilter(recipientID)
	filter["isRead"] = false
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", recipientID, err)
	}
	r.cache.set(ctx, recipientID, count)
	return count, nil
}

// MarkAsRead marks one of the recipient's notifications as read.
func (r *MongoNotificationRepo) MarkAsRead(recipientID, notificationID string) error {
	return r.update(recipientID, bson.M{"id": notificationID, "to": recipientID}, bson.M{"isRead": true})
}

// MarkAllAsRead marks all of the recipient's notifications as read.
func (r *MongoNotificationRepo) MarkAllAsRead(recipientID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := liveFilter(recipientID)
	filter["isRead"] = false
	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}

	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark notifications read for user %s: %w", recipientID, err)
	}
	r.cache.invalidate(ctx, recipientID)
	return nil
}

// SoftDelete flags one of the recipient's notifications as deleted.
func (r *MongoNotificationRepo) SoftDelete(recipientID, notificationID string) error {
	return r.update(recipientID, bson.M{"id": notificationID, "to": recipientID}, bson.M{"isDeleted": true})
}

func (r *MongoNotificationRepo) update(recipientID string, filter bson.M, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification not found")
	}
	r.cache.invalidate(ctx, recipientID)
	return nil
}
