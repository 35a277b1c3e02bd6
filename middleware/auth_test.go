package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkup/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return router
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "john@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doGet(newAuthRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"userID":"u1"}` {
		t.Errorf("body = %s", body)
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	expired, err := utils.GenerateToken("u1", "john@example.com", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doGet(router, tt.header); w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}
