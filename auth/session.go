package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	authConfig "github.com/ignisVeneficus/wifiportal/config/auth"
)

// Session keys readable through Session.Get.
const (
	SessionGatewayID      = "gw_id"
	SessionGatewayAddress = "gw_address"
	SessionGatewayPort    = "gw_port"
	SessionLang           = "lang"
)

type SessionClaims struct {
	UserID         *uint64 `json:"uid,omitempty"`
	GatewayID      string  `json:"gw_id,omitempty"`
	GatewayAddress string  `json:"gw_address,omitempty"`
	GatewayPort    string  `json:"gw_port,omitempty"`
	Lang           string  `json:"lang,omitempty"`
	jwt.RegisteredClaims
}

// Session is the per-client state carried in the signed session cookie.
type Session struct {
	claims SessionClaims
	dirty  bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) field(key string) *string {
	switch key {
	case SessionGatewayID:
		return &s.claims.GatewayID
	case SessionGatewayAddress:
		return &s.claims.GatewayAddress
	case SessionGatewayPort:
		return &s.claims.GatewayPort
	case SessionLang:
		return &s.claims.Lang
	}
	return nil
}

// Get returns the value stored under key; empty values count as absent.
func (s *Session) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	f := s.field(key)
	if f == nil || *f == "" {
		return "", false
	}
	return *f, true
}

func (s *Session) Set(key, value string) {
	f := s.field(key)
	if f == nil || *f == value {
		return
	}
	*f = value
	s.dirty = true
}

func (s *Session) UserID() (uint64, bool) {
	if s == nil || s.claims.UserID == nil {
		return 0, false
	}
	return *s.claims.UserID, true
}

func (s *Session) SetUserID(id uint64) {
	s.claims.UserID = &id
	s.dirty = true
}

// ClearUser forgets the logged-in user and keeps everything else, so the
// gateway the client came through survives a logout.
func (s *Session) ClearUser() {
	if s.claims.UserID == nil {
		return
	}
	s.claims.UserID = nil
	s.dirty = true
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

type SessionService struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

func NewSessionService(cfg authConfig.SessionConfig) *SessionService {
	return &SessionService{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
		now:        time.Now,
	}
}

func (s *SessionService) Issue(sess *Session) (string, error) {
	now := s.now()
	claims := sess.claims
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a session token. Only HS256 is accepted.
func (s *SessionService) Parse(tokenStr string) (*Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{claims: *claims}, nil
}

// Load returns the session of the request, or a fresh one when the cookie
// is missing or does not verify.
func (s *SessionService) Load(r *http.Request) *Session {
	c, err := r.Cookie(s.cookieName)
	if err != nil || c.Value == "" {
		return NewSession()
	}
	sess, err := s.Parse(c.Value)
	if err != nil {
		sess = NewSession()
		// drop the broken cookie on the next save
		sess.dirty = true
	}
	return sess
}

func (s *SessionService) Save(w http.ResponseWriter, sess *Session) error {
	token, err := s.Issue(sess)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	sess.dirty = false
	return nil
}
