package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campushub/teacher-service/internal/constants"
	"github.com/campushub/teacher-service/internal/service"
	"github.com/gin-gonic/gin"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *service.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	mw := NewJWTMiddleware(jwtSvc)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		userID := c.MustGet(constants.GinKeyUserID).(uint)
		email := c.MustGet(constants.GinKeyUserEmail).(string)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})

	return router, jwtSvc
}

func TestRequireAuthRejects(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	expired := service.NewJWTService("test-secret", -time.Minute)
	expiredToken, err := expired.GenerateToken(1, "old@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	otherSecret := service.NewJWTService("wrong-secret", time.Hour)
	foreignToken, err := otherSecret.GenerateToken(1, "spoof@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "Missing header", header: ""},
		{name: "No Bearer prefix", header: "sometoken"},
		{name: "Wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "Malformed token", header: "Bearer not.a.jwt"},
		{name: "Expired token", header: "Bearer " + expiredToken},
		{name: "Wrong secret", header: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(constants.HeaderAuthorization, tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Expected 401, got %d", w.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Bad response body: %v", err)
			}
			if body["status"] != "error" {
				t.Errorf("Expected error status, got %v", body["status"])
			}
			if body["message"] != constants.MsgUnauthorized {
				t.Errorf("Expected generic unauthorized message, got %v", body["message"])
			}
		})
	}
}

func TestRequireAuthAccepts(t *testing.T) {
	router, jwtSvc := newAuthTestRouter(t)

	token, err := jwtSvc.GenerateToken(7, "ok@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if body["user_id"] != float64(7) {
		t.Errorf("Expected user_id 7 from claims, got %v", body["user_id"])
	}
	if body["email"] != "ok@example.com" {
		t.Errorf("Expected email from claims, got %v", body["email"])
	}
}
