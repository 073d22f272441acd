package session

// Cookie and header names shared by the auth handler and middleware.
const (
	CookieName     = "sessionid"
	CSRFCookieName = "csrftoken"
	CSRFHeader     = "X-CSRFToken"
)
