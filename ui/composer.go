package ui

import (
	"html/template"

	"github.com/ignisVeneficus/wifiportal/locale"
	"golang.org/x/text/message"
)

// Composer collects the parts of one portal page and renders it. It belongs
// to a single request and is not safe for concurrent use.
type Composer struct {
	deps    Deps
	req     Request
	printer *message.Printer

	title              string
	htmlHeaders        template.HTML
	mainContent        template.HTML
	toolContent        template.HTML
	toolSectionEnabled bool
	footerScripts      []template.HTML
}

func New(deps Deps, req Request) *Composer {
	c := &Composer{
		deps:               deps,
		req:                req,
		printer:            deps.Locales.Printer(req.Locale),
		toolSectionEnabled: true,
	}
	c.title = c.printer.Sprintf(locale.MsgAuthServer, req.Network.Name)
	return c
}

func (c *Composer) SetTitle(title string) {
	c.title = title
}

func (c *Composer) Title() string {
	return c.title
}

func (c *Composer) SetMainContent(html template.HTML) {
	c.mainContent = html
}

// SetHTMLHeader replaces the extra markup placed in <head>.
func (c *Composer) SetHTMLHeader(headers template.HTML) {
	c.htmlHeaders = headers
}

// AddFooterScript appends a script; scripts are emitted in the order added.
func (c *Composer) AddFooterScript(script template.HTML) {
	c.footerScripts = append(c.footerScripts, script)
}

func (c *Composer) SetToolSectionEnabled(enabled bool) {
	c.toolSectionEnabled = enabled
}

func (c *Composer) IsToolSectionEnabled() bool {
	return c.toolSectionEnabled
}

// SetToolContent sets the extra content shown inside the start tool pane.
func (c *Composer) SetToolContent(html template.HTML) {
	c.toolContent = html
}

func (c *Composer) tr(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// text turns a translated message into HTML.
func (c *Composer) text(key string, args ...any) template.HTML {
	return template.HTML(template.HTMLEscapeString(c.tr(key, args...)))
}
