package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/stretchr/testify/assert"
)

func requestIDEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), NoStore())
	r.GET("/", func(c *gin.Context) {
		*seen = c.GetString(logging.TraceIDKey)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestIDKeepsWellFormedHeader(t *testing.T) {
	var seen string
	r := requestIDEngine(&seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "gw-abc_123.4")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "gw-abc_123.4", seen)
	assert.Equal(t, "gw-abc_123.4", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))
}

func TestRequestIDReplacesBadHeader(t *testing.T) {
	for _, bad := range []string{"", "has space", "line\nbreak", strings.Repeat("a", 65)} {
		var seen string
		r := requestIDEngine(&seen)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if bad != "" {
			req.Header[RequestIDHeader] = []string{bad}
		}
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, bad, seen)
		assert.Len(t, seen, 36)
	}
}
