package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/config"
	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"github.com/ignisVeneficus/wifiportal/content"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/selector"
	"github.com/ignisVeneficus/wifiportal/server/routes"
	"github.com/ignisVeneficus/wifiportal/tpl"
	"github.com/ignisVeneficus/wifiportal/ui"
	"github.com/rs/zerolog/log"
)

// Portal holds the collaborators shared by every request.
type Portal struct {
	cfg      config.Config
	db       *dao.Database
	renderer *tpl.TemplateResolver
	sessions *auth.SessionService
	locales  *locale.Table
	pages    *content.Pages
	deps     ui.Deps
}

func NewPortal(ctx context.Context, cfg config.Config, db *dao.Database) (*Portal, error) {
	logg := logging.Enter(ctx, "server.portal.create", nil)
	renderer, err := tpl.NewTemplateResolver(ctx, cfg.Portal.Templates.Custom, tpl.DefaultFuncMap())
	if err != nil {
		logging.ExitErr(logg, err)
		return nil, err
	}
	locales, err := locale.NewTable(cfg.Portal.Locales, cfg.Portal.DefaultLocale)
	if err != nil {
		logging.ExitErr(logg, err)
		return nil, err
	}
	contentFS := os.DirFS(cfg.Portal.Content.Root)
	p := &Portal{
		cfg:      cfg,
		db:       db,
		renderer: renderer,
		sessions: auth.NewSessionService(cfg.Auth.Session),
		locales:  locales,
		pages:    content.NewPages(os.DirFS(filepath.Join(cfg.Portal.Content.Root, portalConfig.PagesDir))),
		deps: ui.Deps{
			Renderer: renderer,
			Nodes:    selector.NewNodeSelector(db, renderer),
			Networks: selector.NewNetworkSelector(db, renderer),
			Locales:  locales,
			Options: ui.Options{
				Content:    contentFS,
				ContentURL: cfg.Portal.Content.URL,
				Stylesheet: cfg.Portal.Content.Stylesheet,
				AdminHref:  cfg.Portal.AdminHref,
			},
		},
	}
	logging.Exit(logg, "ok", nil)
	return p, nil
}

// Handler builds the gin engine serving the portal.
func (p *Portal) Handler() (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(p.cfg.Server.TrustedProxies); err != nil {
		return nil, err
	}

	r.Use(
		RequestID(),
		Logger(),
		gin.Recovery(),
	)

	// content is served without the session: stylesheets and images only
	if url := p.cfg.Portal.Content.URL; strings.HasPrefix(url, "/") {
		r.StaticFS(strings.TrimSuffix(url, "/"), gin.Dir(p.cfg.Portal.Content.Root, false))
	}

	portal := r.Group("/")
	portal.Use(
		NoStore(),
		SessionMiddleware(p.sessions, p.locales),
		UserMiddleware(p.db, p.cfg.Auth, p.cfg.Env),
	)
	{
		portal.GET(routes.GetRootPath(), p.StartPage)
		portal.GET(routes.GetAdminPath(), p.AdminPage)
		portal.GET(routes.GetLoginPath(), p.LoginPage)
		portal.GET(routes.GetLogoutPath(), p.Logout)
		portal.GET(routes.GetPagePath(), p.ContentPage)
	}
	r.NoRoute(
		NoStore(),
		SessionMiddleware(p.sessions, p.locales),
		UserMiddleware(p.db, p.cfg.Auth, p.cfg.Env),
		p.NotFound,
	)
	return r, nil
}

// Run serves the portal until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, db *dao.Database) error {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == config.EnvDevelopment {
		gin.SetMode(gin.DebugMode)
	}

	p, err := NewPortal(ctx, cfg, db)
	if err != nil {
		return err
	}
	if cfg.Env == config.EnvDevelopment {
		if err := p.renderer.Watch(ctx); err != nil {
			log.Logger.Warn().Err(err).Msg("template watcher not started")
		}
	}
	handler, err := p.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,

		ReadTimeout:       cfg.Server.Timeouts.Read,
		ReadHeaderTimeout: cfg.Server.Timeouts.Header,
		WriteTimeout:      cfg.Server.Timeouts.Write,
		IdleTimeout:       cfg.Server.Timeouts.Idle,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Logger.Info().Str("addr", cfg.Server.Addr).Msg("portal listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
