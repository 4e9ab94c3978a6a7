package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog/internal/session"
)

const identityKey = "identity"

// Identity extracts the authenticated identity from the gin context.
func Identity(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return session.Identity{}, false
	}
	ident, ok := v.(session.Identity)
	return ident, ok
}

type Auth struct {
	Store session.Store
}

func NewAuth(store session.Store) *Auth {
	return &Auth{Store: store}
}

// RequireAuth resolves the session cookie to an identity and attaches it to
// the request context, rejecting the request with 401 otherwise.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ident, err := a.Store.Get(c.Request.Context(), cookie)
		if err != nil || ident == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(identityKey, *ident)
		c.Next()
	}
}

// RequireAdmin rejects identities without the admin flag. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := Identity(c)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !ident.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
