package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionIssuesIDWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatal("expected a session id in context")
	}
	if got := resp.Header().Get(SessionHeader); got != seen {
		t.Fatalf("header session id %q != context session id %q", got, seen)
	}
}

func TestSessionKeepsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(SessionHeader, "session-abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get(SessionHeader); got != "session-abc" {
		t.Fatalf("expected session id echoed back, got %q", got)
	}
}
