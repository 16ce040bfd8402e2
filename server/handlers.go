package server

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/content"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/ignisVeneficus/wifiportal/server/routes"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/ignisVeneficus/wifiportal/ui"
)

const pageTemplate = "sites/page.html"

// composer prepares a page composer for the request.
func (p *Portal) composer(c *gin.Context) (*ui.Composer, error) {
	sess := auth.GetSession(c)
	params := c.Request.URL.Query()

	gw, _ := ui.ResolveGateway(params, sess)
	network, err := dao.GetCurrentNetwork(p.db, c, gw.ID)
	if err != nil {
		if !errors.Is(err, dao.ErrDataNotFound) {
			return nil, err
		}
		// no network configured yet
		network = dbo.Network{}
	}

	// a nil *UserContext must stay a nil interface
	var user ui.User
	if uc := auth.GetUserContext(c); uc != nil {
		user = uc
	}

	return ui.New(p.deps, ui.Request{
		User:    user,
		Session: sess,
		Params:  params,
		URI:     c.Request.RequestURI,
		Locale:  GetLocale(c),
		Network: network,
	}), nil
}

func (p *Portal) render(c *gin.Context, status int, fill func(*ui.Composer) error) {
	comp, err := p.composer(c)
	if err != nil {
		p.internalError(c, err)
		return
	}
	if fill != nil {
		if err := fill(comp); err != nil {
			p.internalError(c, err)
			return
		}
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Display(c, c.Writer); err != nil {
		p.internalError(c, err)
	}
}

// internalError answers 500 when nothing was written yet.
func (p *Portal) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	if c.Writer.Written() {
		c.Abort()
		return
	}
	printer := p.locales.Printer(GetLocale(c))
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.AbortWithStatus(http.StatusInternalServerError)
	_, _ = c.Writer.WriteString(printer.Sprintf(locale.MsgInternalError))
}

func (p *Portal) StartPage(c *gin.Context) {
	p.render(c, http.StatusOK, nil)
}

func (p *Portal) AdminPage(c *gin.Context) {
	p.render(c, http.StatusOK, func(comp *ui.Composer) error {
		comp.SetTitle(p.locales.Printer(GetLocale(c)).Sprintf(locale.MsgAdministration))
		return comp.SetToolSection(c, data.SectionAdmin)
	})
}

// LoginPage only shows where the login form goes; checking credentials is
// done elsewhere.
func (p *Portal) LoginPage(c *gin.Context) {
	p.render(c, http.StatusOK, func(comp *ui.Composer) error {
		html, err := comp.SelectToolContent(c, data.SectionLogin)
		if err != nil {
			return err
		}
		comp.SetMainContent(html)
		return nil
	})
}

// Logout forgets the user and sends the client back to the start page of
// the gateway it came through.
func (p *Portal) Logout(c *gin.Context) {
	sess := auth.GetSession(c)
	sess.ClearUser()
	if sess.Dirty() {
		if err := p.sessions.Save(c.Writer, sess); err != nil {
			p.internalError(c, err)
			return
		}
	}
	gwID, _ := sess.Get(auth.SessionGatewayID)
	gwAddress, _ := sess.Get(auth.SessionGatewayAddress)
	gwPort, _ := sess.Get(auth.SessionGatewayPort)
	c.Redirect(http.StatusFound, routes.CreatePortalPath(gwID, gwAddress, gwPort).String())
}

func (p *Portal) ContentPage(c *gin.Context) {
	page, err := p.pages.Load(c.Param("name"), GetLocale(c))
	if errors.Is(err, content.ErrPageNotFound) {
		p.NotFound(c)
		return
	}
	if err != nil {
		p.internalError(c, err)
		return
	}
	p.render(c, http.StatusOK, func(comp *ui.Composer) error {
		html, err := p.renderer.Fetch(pageTemplate, data.PageContext{
			Lang:  GetLocale(c),
			Name:  page.Name,
			Title: page.Title,
			Body:  page.Body,
		})
		if err != nil {
			return err
		}
		if page.Title != "" {
			comp.SetTitle(page.Title)
		}
		comp.SetMainContent(html)
		return nil
	})
}

func (p *Portal) NotFound(c *gin.Context) {
	comp, err := p.composer(c)
	if err != nil {
		p.internalError(c, err)
		return
	}
	msg := p.locales.Printer(GetLocale(c)).Sprintf(locale.MsgPageNotFound)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusNotFound)
	if err := comp.DisplayError(c, c.Writer, template.HTMLEscapeString(msg), true); err != nil {
		p.internalError(c, err)
	}
}
