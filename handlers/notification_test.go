package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkup/models"

	"github.com/gin-gonic/gin"
)

type fakeNotifRepo struct {
	notifications []models.Notification
	total         int64
	unread        int64
	err           error

	lastPage  int
	lastLimit int
	readIDs   []string
	readAll   bool
	deleted   []string
}

func (f *fakeNotifRepo) Create(n *models.Notification) error { return f.err }

func (f *fakeNotifRepo) GetByRecipient(recipientID string, page, limit int) ([]models.Notification, int64, error) {
	f.lastPage, f.lastLimit = page, limit
	return f.notifications, f.total, f.err
}

func (f *fakeNotifRepo) GetUnreadCount(recipientID string) (int64, error) {
	return f.unread, f.err
}

func (f *fakeNotifRepo) MarkAsRead(recipientID, notificationID string) error {
	if f.err != nil {
		return f.err
	}
	f.readIDs = append(f.readIDs, notificationID)
	return nil
}

func (f *fakeNotifRepo) MarkAllAsRead(recipientID string) error {
	if f.err != nil {
		return f.err
	}
	f.readAll = true
	return nil
}

func (f *fakeNotifRepo) SoftDelete(recipientID, notificationID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, notificationID)
	return nil
}

func newNotifRouter(repo *fakeNotifRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHandler(repo)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})
	router.GET("/api/notifications", h.ListHandler)
	router.GET("/api/notifications/unread-count", h.UnreadCountHandler)
	router.PUT("/api/notifications/:id/read", h.MarkAsReadHandler)
	router.PUT("/api/notifications/read-all", h.MarkAllAsReadHandler)
	router.DELETE("/api/notifications/:id", h.DeleteHandler)
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListHandlerRequiresAuth(t *testing.T) {
	router := newNotifRouter(&fakeNotifRepo{}, "")
	if w := serve(router, http.MethodGet, "/api/notifications"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestListHandlerDefaultsAndMeta(t *testing.T) {
	repo := &fakeNotifRepo{
		notifications: []models.Notification{{ID: "n1", To: "u1", Subject: "follow"}},
		total:         41,
	}
	router := newNotifRouter(repo, "u1")

	w := serve(router, http.MethodGet, "/api/notifications")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if repo.lastPage != 1 || repo.lastLimit != 20 {
		t.Errorf("page/limit = %d/%d, want 1/20", repo.lastPage, repo.lastLimit)
	}

	var body struct {
		Notifications []models.Notification `json:"notifications"`
		Meta          struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalItems  int64 `json:"totalItems"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Notifications) != 1 || body.Notifications[0].ID != "n1" {
		t.Errorf("notifications = %+v", body.Notifications)
	}
	if body.Meta.TotalItems != 41 || body.Meta.TotalPages != 3 || body.Meta.CurrentPage != 1 {
		t.Errorf("meta = %+v", body.Meta)
	}
}

func TestListHandlerClampsLimit(t *testing.T) {
	repo := &fakeNotifRepo{}
	router := newNotifRouter(repo, "u1")

	serve(router, http.MethodGet, "/api/notifications?page=3&limit=500")
	if repo.lastPage != 3 || repo.lastLimit != 20 {
		t.Errorf("page/limit = %d/%d, want 3/20", repo.lastPage, repo.lastLimit)
	}
}

func TestUnreadCountHandler(t *testing.T) {
	router := newNotifRouter(&fakeNotifRepo{unread: 7}, "u1")

	w := serve(router, http.MethodGet, "/api/notifications/unread-count")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"count":7}` {
		t.Errorf("body = %s", body)
	}
}

func TestMarkAsReadHandler(t *testing.T) {
	repo := &fakeNotifRepo{}
	router := newNotifRouter(repo, "u1")

	w := serve(router, http.MethodPut, "/api/notifications/n42/read")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if len(repo.readIDs) != 1 || repo.readIDs[0] != "n42" {
		t.Errorf("readIDs = %v", repo.readIDs)
	}
}

func TestMarkAsReadHandlerNotFound(t *testing.T) {
	repo := &fakeNotifRepo{err: errors.New("notification not found")}
	router := newNotifRouter(repo, "u1")

	if w := serve(router, http.MethodPut, "/api/notifications/missing/read"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestMarkAllAsReadHandler(t *testing.T) {
	repo := &fakeNotifRepo{}
	router := newNotifRouter(repo, "u1")

	if w := serve(router, http.MethodPut, "/api/notifications/read-all"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !repo.readAll {
		t.Error("MarkAllAsRead was not called")
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := &fakeNotifRepo{}
	router := newNotifRouter(repo, "u1")

	if w := serve(router, http.MethodDelete, "/api/notifications/n9"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "n9" {
		t.Errorf("deleted = %v", repo.deleted)
	}
}
