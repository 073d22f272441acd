package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the Gin context.
// If the session middleware did not inject it, a 401 is written and the
// caller should return immediately.
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "authentication required")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "authentication required")
		return 0, false
	}
	return id, true
}

// pathID parses the :id path segment. A non-numeric id gets a 404, the
// same as an id that matches no row.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, 10404, "not found")
		return 0, false
	}
	return uint(id), true
}
