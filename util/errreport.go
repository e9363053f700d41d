package util

import (
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

var sentryEnabled atomic.Bool

// InitSentry enables error reporting. An empty DSN leaves reporting disabled.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return err
	}
	sentryEnabled.Store(true)
	return nil
}

// FlushSentry waits for buffered events to be delivered.
func FlushSentry() {
	if sentryEnabled.Load() {
		sentry.Flush(2 * time.Second)
	}
}

// ReportError logs err and, when Sentry is enabled, captures it with the request attached.
func ReportError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	event := Logger().Error().Err(err)
	if c != nil && c.Request != nil {
		event = event.Str("method", c.Request.Method).Str("path", c.Request.URL.Path)
	}
	event.Msg("server error")

	if !sentryEnabled.Load() {
		return
	}
	hub := sentry.CurrentHub().Clone()
	if c != nil && c.Request != nil {
		hub.Scope().SetRequest(c.Request)
		if id := c.GetString("request_id"); id != "" {
			hub.Scope().SetTag("request_id", id)
		}
	}
	hub.CaptureException(err)
}
