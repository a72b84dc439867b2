package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stallfront/internal/constants"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func newSessionTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString(constants.SessionContextKey)})
	})
	return r
}

func TestSessionMiddlewareGeneratesToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newSessionTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] == "" {
		t.Fatalf("generated session id should not be empty")
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("session cookie should be set on first visit")
	}
	if cookie.Value != resp["session_id"] {
		t.Fatalf("cookie value want %s got %s", resp["session_id"], cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie should be http only")
	}
}

func TestSessionMiddlewareHonorsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newSessionTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(constants.SessionHeaderName, "session-abc")
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] != "session-abc" {
		t.Fatalf("session id want session-abc got %s", resp["session_id"])
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName {
			t.Fatalf("existing session should not reset cookie")
		}
	}
}

func TestSessionMiddlewareHonorsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := newSessionTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "session-cookie"})
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] != "session-cookie" {
		t.Fatalf("session id want session-cookie got %s", resp["session_id"])
	}
}

func TestKeyBySessionFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := KeyBySession(c); got == "" {
		t.Fatalf("key should fall back to client ip, got empty")
	}

	c.Set(constants.SessionContextKey, "session-xyz")
	if got := KeyBySession(c); got != "session-xyz" {
		t.Fatalf("key want session-xyz got %s", got)
	}
}
