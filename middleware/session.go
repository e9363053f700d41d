package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"

	// SessionTokenName is both the request header and the cookie carrying the session token.
	SessionTokenName = "session-token"
)

// SessionTokenFromRequest reads the session token from the header, then the cookie.
func SessionTokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(SessionTokenName)); token != "" {
		return token
	}
	if token, err := c.Cookie(SessionTokenName); err == nil {
		return token
	}
	return ""
}

// SessionMiddleware binds the caller's identity to the request when a live session
// token is presented. It never aborts; RequirePrincipal enforces access.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionTokenFromRequest(c)
		db := GetDB(c)
		if token == "" || db == nil {
			c.Next()
			return
		}

		identity, err := auth.NewSessionStore(db, 0).Resolve(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(IdentityKey, identity)
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrSessionNotFound):
		default:
			util.Logger().Warn().Err(err).Str("path", c.Request.URL.Path).Msg("session lookup failed")
		}
		c.Next()
	}
}

// GetIdentity returns the identity bound by SessionMiddleware.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

// RequirePrincipal rejects requests without a session (401) or whose principal
// kind is not among kinds (403).
func RequirePrincipal(kinds ...model.PrincipalKind) gin.HandlerFunc {
	allowed := make([]string, 0, len(kinds))
	for _, k := range kinds {
		allowed = append(allowed, string(k))
	}

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			util.LogUnauthorizedAccess(util.UnauthorizedAccessParams{
				IP:       c.ClientIP(),
				Resource: c.Request.URL.Path,
				Reason:   "no valid session",
			})
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg:      "Please log in to continue",
				Err:      fmt.Errorf("missing or invalid session token"),
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		if !util.Contains(string(identity.Kind), allowed) {
			util.LogUnauthorizedAccess(util.UnauthorizedAccessParams{
				Kind:     identity.Kind,
				ID:       identity.ID,
				IP:       c.ClientIP(),
				Resource: c.Request.URL.Path,
				Reason:   fmt.Sprintf("requires %s", strings.Join(allowed, " or ")),
			})
			util.CallForbidden(c, util.APIErrorParams{
				Msg: "You are not allowed to access this page",
				Err: fmt.Errorf("principal kind %q not permitted", identity.Kind),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
