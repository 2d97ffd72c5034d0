package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/auth"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "apontador_session"

// Context keys set by RequireSession for downstream handlers.
const (
	CtxSession = "session"
)

// RequireSession rejects requests without a valid session cookie and makes
// the resolved session available to handlers.
func RequireSession(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		session, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		c.Set(CtxSession, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c *gin.Context) auth.Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return auth.Session{}
	}
	return v.(auth.Session)
}
