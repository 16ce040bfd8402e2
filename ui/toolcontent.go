package ui

import (
	"context"
	"html/template"

	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
)

// SelectToolContent builds the tool pane content for START or LOGIN; any
// other name yields a short diagnostic text instead of an error.
func (c *Composer) SelectToolContent(ctx context.Context, section string) (template.HTML, error) {
	switch section {
	case data.SectionStart:
		return c.deps.Renderer.Fetch(ToolContentTemplate, c.startContent())
	case data.SectionLogin:
		return c.deps.Renderer.Fetch(ToolContentTemplate, data.ToolContentContext{
			Lang:         c.req.Locale,
			SectionLogin: true,
		})
	default:
		return c.text(locale.MsgUnknownSection) + template.HTML(template.HTMLEscapeString(section)), nil
	}
}

func (c *Composer) startContent() data.ToolContentContext {
	network := c.req.Network
	tc := data.ToolContentContext{
		Lang:               c.req.Locale,
		SectionStart:       true,
		NetworkHomepageURL: network.HomepageURL,
		NetworkName:        network.Name,
		FormAction:         c.req.URI,
		LanguageChooser:    c.languageChooser(),
		ToolContent:        c.toolContent,
		AccountInformation: c.tr(locale.MsgAccountsFree, network.Name),
	}
	if network.TechSupportEmail != "" {
		tc.TechSupportInformation = template.HTML(c.tr(locale.MsgTechSupport, mailto(network.TechSupportEmail)))
	}

	if u := c.req.User; u != nil {
		tc.IsValidUser = true
		tc.Username = u.GetUsername()
		// logging out must keep the gateway the client was captured by
		if gw, ok := SessionGateway(c.req.Session); ok {
			tc.LogoutParameters = gw.LogoutParameters()
		}
	} else if gw, ok := ResolveGateway(c.req.Params, c.req.Session); ok {
		tc.LoginParameters = gw.LoginParameters()
	}
	return tc
}

// languageChooser lists the configured locales in table order.
func (c *Composer) languageChooser() []data.LocaleOption {
	locales := c.deps.Locales.Locales()
	opts := make([]data.LocaleOption, 0, len(locales))
	for _, l := range locales {
		opts = append(opts, data.LocaleOption{
			ID:          l.ID,
			DisplayName: l.Name,
			IsSelected:  l.ID == c.req.Locale,
		})
	}
	return opts
}

func mailto(email string) string {
	e := template.HTMLEscapeString(email)
	return `<a href="mailto:` + e + `">` + e + `</a>`
}
