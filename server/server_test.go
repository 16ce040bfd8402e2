package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/config"
	authConfig "github.com/ignisVeneficus/wifiportal/config/auth"
	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"github.com/ignisVeneficus/wifiportal/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testPortal struct {
	portal  *Portal
	handler http.Handler
	fixture dbtest.Fixture
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "common", "stylesheet.css"), "body{}")
	writeFile(t, filepath.Join(root, "default", "stylesheet.css"), "body{}")
	writeFile(t, filepath.Join(root, "node", "cafe", "stylesheet.css"), "body{color:red}")
	writeFile(t, filepath.Join(root, "pages", "about.md"), "# About\n\nFree *wifi*.\n")

	cfg := config.Config{
		Env: config.EnvProduction,
		Auth: authConfig.AuthConfig{
			Session: authConfig.SessionConfig{
				Secret:     strings.Repeat("s", 40),
				CookieName: authConfig.DefaultCookieName,
				TTL:        time.Hour,
			},
			SplashOnlyUsername: authConfig.DefaultSplashOnlyUsername,
		},
		Portal: portalConfig.PortalConfig{
			Locales: []portalConfig.LocaleConfig{
				{ID: "en", Name: "English"},
				{ID: "fr", Name: "Français"},
			},
			DefaultLocale: "en",
			Content: portalConfig.ContentConfig{
				Root:       root,
				URL:        portalConfig.DefaultContentURL,
				Stylesheet: portalConfig.DefaultStylesheet,
			},
			AdminHref: portalConfig.DefaultAdminHref,
		},
	}

	d := dbtest.Open(t)
	f := dbtest.Seed(t, d)
	p, err := NewPortal(context.Background(), cfg, d)
	require.NoError(t, err)
	h, err := p.Handler()
	require.NoError(t, err)
	return &testPortal{portal: p, handler: h, fixture: f}
}

// sessionCookie issues a cookie for a user behind the cafe gateway.
func (tp *testPortal) sessionCookie(t *testing.T, userID uint64) *http.Cookie {
	t.Helper()
	sess := auth.NewSession()
	if userID != 0 {
		sess.SetUserID(userID)
	}
	sess.Set(auth.SessionGatewayID, "cafe")
	sess.Set(auth.SessionGatewayAddress, "10.0.0.1")
	sess.Set(auth.SessionGatewayPort, "2060")
	token, err := tp.portal.sessions.Issue(sess)
	require.NoError(t, err)
	return &http.Cookie{Name: authConfig.DefaultCookieName, Value: token}
}

func (tp *testPortal) get(t *testing.T, target string, cookie *http.Cookie) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	tp.handler.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec, string(body)
}

func responseCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == authConfig.DefaultCookieName {
			return c
		}
	}
	return nil
}

func TestStartPageAnonymousFromGateway(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/?gw_id=cafe&gw_address=10.0.0.1&gw_port=2060", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, body, "<title>Zap authentication server</title>")
	assert.Contains(t, body, `href="/login/?gw_id=cafe&amp;gw_address=10.0.0.1&amp;gw_port=2060"`)
	assert.Contains(t, body, `href="/content/node/cafe/stylesheet.css"`)

	// the gateway is remembered for the next request
	cookie := responseCookie(rec)
	require.NotNil(t, cookie)
	sess, err := tp.portal.sessions.Parse(cookie.Value)
	require.NoError(t, err)
	gw, ok := sess.Get(auth.SessionGatewayID)
	assert.True(t, ok)
	assert.Equal(t, "cafe", gw)

	_, body = tp.get(t, "/", cookie)
	assert.Contains(t, body, `href="/login/?gw_id=cafe&amp;gw_address=10.0.0.1&amp;gw_port=2060"`)
}

func TestStartPageWithoutGateway(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Île Sans Fil authentication server")
	assert.Contains(t, body, `href="/login/"`)
	assert.Contains(t, body, `href="/content/default/stylesheet.css"`)
	assert.Nil(t, responseCookie(rec))
}

func TestStartPageLoggedIn(t *testing.T) {
	tp := newTestPortal(t)
	_, body := tp.get(t, "/", tp.sessionCookie(t, tp.fixture.Owner))
	assert.Contains(t, body, "Logged in as owner")
	assert.Contains(t, body, `href="/logout?logout=true&amp;gw_id=cafe&amp;gw_address=10.0.0.1&amp;gw_port=2060"`)
	assert.Contains(t, body, `class="admin-menu"`)
}

func TestLanguageChoiceIsRemembered(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/?lang=fr", nil)
	assert.Contains(t, body, "Langue")
	assert.Contains(t, body, `value="fr" selected="selected"`)

	cookie := responseCookie(rec)
	require.NotNil(t, cookie)
	_, body = tp.get(t, "/", cookie)
	assert.Contains(t, body, "Langue")
}

func TestAcceptLanguage(t *testing.T) {
	tp := newTestPortal(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
	rec := httptest.NewRecorder()
	tp.handler.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Langue")
}

func TestAdminPage(t *testing.T) {
	tp := newTestPortal(t)

	_, body := tp.get(t, "/admin/", nil)
	assert.Contains(t, body, "You do not have permissions to access any administration functions.")
	assert.NotContains(t, body, `name="object_id"`)

	_, body = tp.get(t, "/admin/", tp.sessionCookie(t, tp.fixture.Owner))
	assert.Contains(t, body, "Café Névé")
	assert.NotContains(t, body, "Bibliothèque")
	assert.NotContains(t, body, "Network administration")

	_, body = tp.get(t, "/admin/", tp.sessionCookie(t, tp.fixture.Admin))
	assert.Contains(t, body, "Café Névé")
	assert.Contains(t, body, "Bibliothèque")
	assert.Contains(t, body, "Network administration")
}

func TestDebugRequest(t *testing.T) {
	tp := newTestPortal(t)

	_, body := tp.get(t, "/?debug_request=1", tp.sessionCookie(t, tp.fixture.Admin))
	assert.Contains(t, body, `class="debug"`)
	assert.Contains(t, body, "debug_request")

	_, body = tp.get(t, "/?debug_request=1", tp.sessionCookie(t, tp.fixture.Owner))
	assert.NotContains(t, body, `class="debug"`)

	_, body = tp.get(t, "/?debug_request=1", nil)
	assert.NotContains(t, body, `class="debug"`)
}

func TestLogoutKeepsGateway(t *testing.T) {
	tp := newTestPortal(t)
	rec, _ := tp.get(t, "/logout?logout=true", tp.sessionCookie(t, tp.fixture.Owner))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?gw_id=cafe&gw_address=10.0.0.1&gw_port=2060", rec.Header().Get("Location"))

	cookie := responseCookie(rec)
	require.NotNil(t, cookie)
	sess, err := tp.portal.sessions.Parse(cookie.Value)
	require.NoError(t, err)
	_, loggedIn := sess.UserID()
	assert.False(t, loggedIn)
	port, _ := sess.Get(auth.SessionGatewayPort)
	assert.Equal(t, "2060", port)

	_, body := tp.get(t, "/", cookie)
	assert.NotContains(t, body, "Logged in as")
}

func TestLoginPage(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/login/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Please log in to use the network.")
}

func TestContentPage(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/page/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "<title>About</title>")
	assert.Contains(t, body, "<em>wifi</em>")

	rec, body = tp.get(t, "/page/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body, "The requested page does not exist or may have been removed.")
}

func TestNotFound(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body, "The requested page does not exist or may have been removed.")
	assert.Contains(t, body, "mailto:support@ilesansfil.example")
}

func TestStaticContent(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/content/node/cafe/stylesheet.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{color:red}", body)
}

func TestInvalidCookieStartsFreshSession(t *testing.T) {
	tp := newTestPortal(t)
	rec, body := tp.get(t, "/", &http.Cookie{Name: authConfig.DefaultCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "Logged in as")
	assert.NotNil(t, responseCookie(rec))
}
