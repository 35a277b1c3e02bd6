package handlers

import (
	"net/http"

	"linkup/services/notification"

	"github.com/gin-gonic/gin"
)

// DispatchHandler exposes dispatch to sibling services that run out of
// process. The endpoint keeps the fire-and-forget contract: dispatch-internal
// failures never produce an error status, only a reported outcome.
type DispatchHandler struct {
	Notifier notification.NotificationService
}

func NewDispatchHandler(notifier notification.NotificationService) *DispatchHandler {
	return &DispatchHandler{Notifier: notifier}
}

type dispatchRequest struct {
	Actor       notification.Actor     `json:"actor" binding:"required"`
	RecipientID string                 `json:"recipientId" binding:"required"`
	Kind        notification.EventKind `json:"kind" binding:"required"`
	Resource    notification.Resource  `json:"resource" binding:"required"`
}

// DispatchHandler accepts a notification event and reports the outcome.
func (h *DispatchHandler) DispatchHandler(c *gin.Context) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispatch payload: " + err.Error()})
		return
	}
	if req.Actor.ID == "" || req.Resource.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actor.id and resource.id are required"})
		return
	}

	result := h.Notifier.Dispatch(c.Request.Context(), notification.Event{
		Actor:       req.Actor,
		RecipientID: req.RecipientID,
		Kind:        req.Kind,
		Resource:    req.Resource,
	})

	c.JSON(http.StatusAccepted, result)
}
