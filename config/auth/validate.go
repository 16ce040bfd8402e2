package auth

import (
	"github.com/ignisVeneficus/wifiportal/config/validate"
)

func (a AuthConfig) Validate(v *validate.ValidationErrors, path string, development bool) {
	validate.RequireSecret(v, path+"/session/secret", a.Session.Secret, MinSecretLen)
	validate.RequireString(v, path+"/session/cookie_name", a.Session.CookieName)
	validate.CheckDuration(v, path+"/session/ttl", a.Session.TTL)
	validate.RequireString(v, path+"/splash_only_username", a.SplashOnlyUsername)
	if development {
		validate.LogConfigOK(path+"/dev_user_id", a.DevUserID)
	}
}
