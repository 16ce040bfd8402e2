package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/auth/data"
)

const UserContextKey = "auth"
const SessionContextKey = "session"

// GetUserContext returns the logged-in user, or nil for anonymous requests.
func GetUserContext(c *gin.Context) *data.UserContext {
	u, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	uc, _ := u.(*data.UserContext)
	return uc
}

func SetUserContext(c *gin.Context, u *data.UserContext) {
	c.Set(UserContextKey, u)
}

func GetSession(c *gin.Context) *Session {
	s, ok := c.Get(SessionContextKey)
	if ok {
		if sess, ok := s.(*Session); ok {
			return sess
		}
	}
	return NewSession()
}

func SetSession(c *gin.Context, s *Session) {
	c.Set(SessionContextKey, s)
}
