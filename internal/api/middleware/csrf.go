package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

// CSRF verifies the X-CSRFToken header on mutating requests.
//
// Authenticated requests are checked against the token bound to the
// session. Requests without a session (login, logout) fall back to the
// double-submit cookie issued by GET /csrf/. Safe methods pass through.
func CSRF(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		header := c.GetHeader(session.CSRFHeader)
		if header == "" {
			response.Forbidden(c, 10003, "CSRF token missing")
			c.Abort()
			return
		}

		expected := ""
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			sess, err := store.Get(c.Request.Context(), token)
			switch {
			case err == nil:
				expected = sess.CSRFToken
			case errors.Is(err, session.ErrNotFound):
				// stale session cookie, fall back to the double-submit cookie
			default:
				response.InternalError(c)
				c.Abort()
				return
			}
		}
		if expected == "" {
			cookie, err := c.Cookie(session.CSRFCookieName)
			if err != nil || cookie == "" {
				response.Forbidden(c, 10003, "CSRF cookie missing")
				c.Abort()
				return
			}
			expected = cookie
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(expected)) != 1 {
			response.Forbidden(c, 10003, "CSRF token mismatch")
			c.Abort()
			return
		}

		c.Next()
	}
}
