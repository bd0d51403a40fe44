package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/sessions"
	"resume-screening-backend/internal/shared/server/respond"
)

const (
	userIDKey       = "userId"
	sessionTokenKey = "sessionToken"

	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "resume_session"
)

// SessionAuth resolves the caller's identity from the session cookie and
// stores it in the request context. It never rejects: routes that require a
// user chain RequireUser after it. A missing, unknown or expired token simply
// leaves the request anonymous.
func SessionAuth(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		c.Set(sessionTokenKey, token)

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				c.Next()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error")
			return
		}

		c.Set(userIDKey, sess.UserID)
		c.Next()
	}
}

// RequireUser aborts with 401 unless SessionAuth resolved an identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserIDFromContext(c) == "" {
			respond.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by SessionAuth.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// SessionTokenFromContext fetches the raw session token, if a cookie was
// presented. Set even when the token did not resolve to a session so logout
// can clear stale cookies.
func SessionTokenFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionTokenKey)
	if token, ok := val.(string); ok {
		return token
	}
	return ""
}
