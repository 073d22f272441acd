package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestSession(t *testing.T, store session.Store) *session.Session {
	t.Helper()

	sess, err := store.Create(context.Background(), 7)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func parseEnvelope(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── RequireSession ──

func TestRequireSession_NoCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	r := gin.New()
	r.GET("/protected", RequireSession(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := parseEnvelope(w); resp.Code != 10002 {
		t.Errorf("expected error code 10002, got %d", resp.Code)
	}
}

func TestRequireSession_UnknownToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	r := gin.New()
	r.GET("/protected", RequireSession(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale-token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireSession_InjectsIdentity(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sess := newTestSession(t, store)

	var gotUserID uint
	var gotSession *session.Session
	r := gin.New()
	r.GET("/protected", RequireSession(store), func(c *gin.Context) {
		gotUserID = c.GetUint("user_id")
		gotSession, _ = SessionFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.Token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != 7 {
		t.Errorf("expected user_id 7 in context, got %d", gotUserID)
	}
	if gotSession == nil || gotSession.Token != sess.Token {
		t.Error("expected the session in context")
	}
}

// ── CSRF ──

func csrfRouter(store session.Store) *gin.Engine {
	r := gin.New()
	r.Use(CSRF(store))
	r.GET("/read", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/write", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCSRF_SafeMethodPasses(t *testing.T) {
	r := csrfRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/read", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for a safe method, got %d", w.Code)
	}
}

func TestCSRF_MissingHeader(t *testing.T) {
	r := csrfRouter(session.NewMemoryStore(time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/write", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if resp := parseEnvelope(w); resp.Code != 10003 {
		t.Errorf("expected error code 10003, got %d", resp.Code)
	}
}

func TestCSRF_DoubleSubmit(t *testing.T) {
	r := csrfRouter(session.NewMemoryStore(time.Hour))

	// header and cookie agree
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, "token-a")
	req.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "token-a"})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for a matching double-submit pair, got %d", w.Code)
	}

	// header and cookie disagree
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, "token-a")
	req.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "token-b"})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a mismatched pair, got %d", w.Code)
	}

	// header without any cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, "token-a")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 without the CSRF cookie, got %d", w.Code)
	}
}

func TestCSRF_SessionBoundToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	sess := newTestSession(t, store)
	r := csrfRouter(store)

	// the session's own token wins over any cookie value
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, sess.CSRFToken)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.Token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for the session-bound token, got %d", w.Code)
	}

	// a forged header is rejected even with a live session
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, "forged")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.Token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a forged header, got %d", w.Code)
	}
}

func TestCSRF_StaleSessionFallsBack(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	r := csrfRouter(store)

	// an expired session cookie plus a valid double-submit pair still works
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set(session.CSRFHeader, "token-a")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "gone"})
	req.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "token-a"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected the stale session to fall back to double-submit, got %d", w.Code)
	}
}

// ── RateLimit ──

func TestRateLimit_NilClientPasses(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected the limiter to degrade without Redis, got %d", w.Code)
		}
	}
}

// ── RequestID ──

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("expected the caller id to be echoed, got %q", got)
	}
}
