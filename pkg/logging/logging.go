// Package logging configures zerolog and the gin request logger.
package logging

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	requestID "github.com/nvbf/league-desk/pkg/requestID"
)

// Setup sets the global level and, in development, the console writer.
func Setup(level string, development bool) {
	if development {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// Middleware tags each request with an X-Request-ID (reusing a valid
// inbound one), stores it in the request context for outbound calls and
// logs the outcome.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		id := c.GetHeader(requestID.Header)
		if !requestID.Valid(id) {
			id = requestID.New()
		}
		c.Request = c.Request.WithContext(requestID.WithID(c.Request.Context(), id))
		c.Header(requestID.Header, id)

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Str("request_id", id).
			Dur("took", time.Since(started)).
			Msg("console request")
	}
}
