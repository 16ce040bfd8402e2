package auth

import "time"

const (
	DefaultCookieName         = "portal_session"
	DefaultSessionTTL         = 24 * time.Hour
	DefaultSplashOnlyUsername = "SPLASH_ONLY_USER"
	MinSecretLen              = 32
)

type AuthConfig struct {
	Session SessionConfig `yaml:"session"`
	// SplashOnlyUsername names the shared account used by splash-only
	// nodes; it is the "nobody" identity and never sees admin controls.
	SplashOnlyUsername string `yaml:"splash_only_username"`
	// DevUserID is the user loaded for every request in development.
	DevUserID uint64 `yaml:"dev_user_id"`
}

type SessionConfig struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

func (a *AuthConfig) TransformBeforeValidation() {
	if a.Session.CookieName == "" {
		a.Session.CookieName = DefaultCookieName
	}
	if a.Session.TTL == 0 {
		a.Session.TTL = DefaultSessionTTL
	}
	if a.SplashOnlyUsername == "" {
		a.SplashOnlyUsername = DefaultSplashOnlyUsername
	}
}
