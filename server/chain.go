package server

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-Id"

// request ids from upstream proxies end up in the log verbatim
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID reuses a well-formed X-Request-Id from the gateway side or
// generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}
		// logging.Enter finds it through gin.Context.Value
		c.Set(logging.TraceIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func responseEvent(c *gin.Context) *zerolog.Event {
	status := c.Writer.Status()
	switch {
	case status >= 500:
		return log.Logger.Error().Str("error", c.Errors.String())
	case status >= 400:
		return log.Logger.Warn()
	default:
		return log.Logger.Info()
	}
}

// Logger writes one line per request. The gateway id comes from the
// session, so it is only known after the portal middleware ran.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		params := zerolog.Dict().
			Str(logging.FieldTraceID, c.GetString(logging.TraceIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start))
		if s, ok := c.Get(auth.SessionContextKey); ok {
			sess, _ := s.(*auth.Session)
			if gw, ok := sess.Get(auth.SessionGatewayID); ok {
				params.Str("gw_id", gw)
			}
		}

		responseEvent(c).
			Str(logging.FieldFunc, "server.request").
			Str(logging.FieldEvent, "http.response").
			Int(logging.FieldResult, c.Writer.Status()).
			Dict(logging.FieldParams, params).
			Msg("")
	}
}

// NoStore keeps portal pages out of shared caches; they depend on the
// session cookie.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "private, no-store")
		c.Header("Vary", "Cookie")
		c.Next()
	}
}
