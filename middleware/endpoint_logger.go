package middleware

import (
	"fmt"
	"time"

	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request as an ENDPOINT_CALL security event.
// Register it after DatabaseMiddleware and SessionMiddleware so the caller can be named.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		details := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"raw_path":    c.Request.URL.Path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"query":       c.Request.URL.RawQuery,
		}
		if id := c.GetString(RequestIDKey); id != "" {
			details["request_id"] = id
		}

		event := util.SecurityEvent{
			EventType: util.EventEndpointCall,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			Details:   details,
		}
		if identity, ok := GetIdentity(c); ok {
			event.PrincipalKind = string(identity.Kind)
			event.PrincipalID = fmt.Sprintf("%d", identity.ID)
			event.Email = util.GetPrincipalEmail(GetDB(c), identity.Kind, identity.ID)
		}

		util.LogSecurityEvent(event)
	}
}
