package handlers

import (
	"math"
	"net/http"
	"strconv"

	notifRepo "linkup/database/repository/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the recipient-facing notification endpoints.
type NotificationHandler struct {
	Records notifRepo.NotificationRepository
}

func NewNotificationHandler(records notifRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Records: records}
}

// ListHandler returns a page of the user's notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	notifications, total, err := h.Records.GetByRecipient(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"meta": gin.H{
			"currentPage": page,
			"totalPages":  totalPages,
			"totalItems":  total,
		},
	})
}

// UnreadCountHandler returns the user's unread badge count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	count, err := h.Records.GetUnreadCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAsReadHandler marks a single notification as read.
func (h *NotificationHandler) MarkAsReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification ID is required"})
		return
	}

	if err := h.Records.MarkAsRead(userID, notificationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllAsReadHandler marks every unread notification as read.
func (h *NotificationHandler) MarkAllAsReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	if err := h.Records.MarkAllAsRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DeleteHandler soft-deletes a notification from the user's feed.
func (h *NotificationHandler) DeleteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification ID is required"})
		return
	}

	if err := h.Records.SoftDelete(userID, notificationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
