package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/auth"
	authData "github.com/ignisVeneficus/wifiportal/auth/data"
	"github.com/ignisVeneficus/wifiportal/config"
	authConfig "github.com/ignisVeneficus/wifiportal/config/auth"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/rs/zerolog/log"
)

const LocaleKey = "locale"

// SessionMiddleware loads the session cookie, remembers the gateway the
// client arrived through and the chosen language, and writes the cookie back
// when either changed.
func SessionMiddleware(svc *auth.SessionService, locales *locale.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := svc.Load(c.Request)

		gwID := c.Query(auth.SessionGatewayID)
		gwAddress := c.Query(auth.SessionGatewayAddress)
		gwPort := c.Query(auth.SessionGatewayPort)
		// a partial triple is ignored, it would break the one already stored
		if gwID != "" && gwAddress != "" && gwPort != "" {
			sess.Set(auth.SessionGatewayID, gwID)
			sess.Set(auth.SessionGatewayAddress, gwAddress)
			sess.Set(auth.SessionGatewayPort, gwPort)
		}

		requested := c.Query(auth.SessionLang)
		remembered, _ := sess.Get(auth.SessionLang)
		lang := locales.Resolve(requested, remembered, c.GetHeader("Accept-Language"))
		if locales.Has(requested) {
			sess.Set(auth.SessionLang, requested)
		}
		c.Set(LocaleKey, lang)

		auth.SetSession(c, sess)
		if sess.Dirty() {
			if err := svc.Save(c.Writer, sess); err != nil {
				log.Logger.Error().Err(err).Msg("session cookie not saved")
			}
		}
		c.Next()
	}
}

func GetLocale(c *gin.Context) string {
	return c.GetString(LocaleKey)
}

// UserMiddleware loads the logged-in user named by the session. Requests
// without a valid user stay anonymous.
func UserMiddleware(db *dao.Database, cfg authConfig.AuthConfig, env config.Environment) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint64
		var ok bool

		switch {
		case env == config.EnvDevelopment && cfg.DevUserID == 0:
			auth.SetUserContext(c, authData.DevContext())
			c.Next()
			return
		case env == config.EnvDevelopment:
			userID, ok = cfg.DevUserID, true
		default:
			userID, ok = auth.GetSession(c).UserID()
		}

		if ok {
			if uc, err := loadUser(c, db, userID, cfg.SplashOnlyUsername); err == nil {
				auth.SetUserContext(c, uc)
			} else if !errors.Is(err, dao.ErrDataNotFound) {
				log.Logger.Error().Err(err).Uint64("user_id", userID).Msg("user not loaded")
			}
		}
		c.Next()
	}
}

func loadUser(c *gin.Context, db *dao.Database, id uint64, splashOnly string) (*authData.UserContext, error) {
	u, err := dao.GetUserById(db, c, id)
	if err != nil {
		return nil, err
	}
	owned, err := dao.CountOwnedNodes(db, c, id)
	if err != nil {
		return nil, err
	}
	return authData.FromUser(u, owned, splashOnly), nil
}
