package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/config"
	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

// AuthHandler owns the session lifecycle endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	cookies config.SessionConfig
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// WithCookieConfig sets the cookie attributes used on login and logout.
func (h *AuthHandler) WithCookieConfig(cfg config.SessionConfig) *AuthHandler {
	h.cookies = cfg
	return h
}

func sameSite(name string) http.SameSite {
	switch name {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	c.SetSameSite(sameSite(h.cookies.Cookie.SameSite))
	c.SetCookie(name, value, maxAge, "/", h.cookies.Cookie.Domain, h.cookies.Cookie.Secure, httpOnly)
}

// GetCSRF issues the anti-forgery token. With a live session the token
// is rotated inside the session record; otherwise it is double-submitted
// as a readable cookie for the client to replay in the X-CSRFToken
// header.
// GET /api/csrf/
func (h *AuthHandler) GetCSRF(c *gin.Context) {
	if sid, err := c.Cookie(session.CookieName); err == nil && sid != "" {
		token, err := h.authSvc.ReissueCSRF(c.Request.Context(), sid)
		if err == nil {
			response.OK(c, dto.CSRFTokenResponse{CSRFToken: token})
			return
		}
		if !errors.Is(err, session.ErrNotFound) {
			response.InternalError(c)
			return
		}
		// stale session cookie, fall back to double-submit
	}

	token := session.NewToken()
	h.setCookie(c, session.CSRFCookieName, token, int(h.cookies.TTL.Seconds()), false)
	response.OK(c, dto.CSRFTokenResponse{CSRFToken: token})
}

// Login verifies credentials and opens a session.
// POST /api/auth/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "username and password are required")
		return
	}

	user, sess, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 10101, "invalid credentials")
			return
		}
		response.InternalError(c)
		return
	}

	maxAge := int(h.cookies.TTL.Seconds())
	h.setCookie(c, session.CookieName, sess.Token, maxAge, true)
	// The CSRF cookie is readable by the frontend so it can set the header.
	h.setCookie(c, session.CSRFCookieName, sess.CSRFToken, maxAge, false)

	response.OK(c, user)
}

// Logout closes the session. Unknown or absent sessions still succeed.
// POST /api/auth/logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.InternalError(c)
		return
	}

	h.setCookie(c, session.CookieName, "", -1, true)
	h.setCookie(c, session.CSRFCookieName, "", -1, false)

	response.OK(c, nil)
}

// CurrentUser returns the account bound to the session.
// GET /api/auth/user/
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, 10002, "authentication required")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
