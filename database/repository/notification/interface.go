package notifRepo

import "linkup/models"

// NotificationRepository defines persistence for notification records.
// Creation happens only through dispatch; the remaining operations back the
// recipient-facing read endpoints.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// GetByRecipient retrieves a page of a user's notifications, newest
	// first, excluding soft-deleted records. Returns the page and the total
	// count of live records.
	GetByRecipient(recipientID string, page, limit int) ([]models.Notification, int64, error)
	// GetUnreadCount returns the number of unread, live records.
	GetUnreadCount(recipientID string) (int64, error)
	// MarkAsRead marks one of the recipient's notifications as read.
	MarkAsRead(recipientID, notificationID string) error
	// MarkAllAsRead marks all of the recipient's notifications as read.
	MarkAllAsRead(recipientID string) error
	// SoftDelete flags one of the recipient's notifications as deleted.
	SoftDelete(recipientID, notificationID string) error
}
