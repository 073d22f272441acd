package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

// Context key under which the session is stored for downstream use.
const sessionKey = "session"

// RequireSession resolves the session cookie against the store and
// injects user_id into the context. Requests without a live session get
// a 401.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				response.Unauthorized(c, 10002, "authentication required")
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set(sessionKey, sess)

		c.Next()
	}
}

// SessionFromContext returns the session injected by RequireSession.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
