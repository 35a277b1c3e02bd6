package handlers

import (
	"net/http"
	"time"

	"linkup/services/user"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler serves pause/resume and device-token endpoints.
type PreferenceHandler struct {
	Users user.UserService
}

func NewPreferenceHandler(users user.UserService) *PreferenceHandler {
	return &PreferenceHandler{Users: users}
}

type pauseRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1"`
}

type pushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// PauseHandler suppresses push delivery for the requested number of minutes.
// In-app records keep being created while paused.
func (h *PreferenceHandler) PauseHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req pauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes is required and must be positive"})
		return
	}

	until, err := h.Users.PauseNotifications(userID, time.Duration(req.Minutes)*time.Minute)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pausedUntil": until})
}

// ResumeHandler clears an active pause.
func (h *PreferenceHandler) ResumeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	if err := h.Users.ResumeNotifications(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications resumed"})
}

// RegisterPushTokenHandler adds a device token for the user.
func (h *PreferenceHandler) RegisterPushTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.Users.RegisterPushToken(userID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token registered"})
}

// UnregisterPushTokenHandler removes a device token for the user.
func (h *PreferenceHandler) UnregisterPushTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.Users.UnregisterPushToken(userID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token removed"})
}
