package ui

import (
	"context"
	"html/template"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
)

// SelectToolSection builds a tool section. ADMIN is the only one; any other
// name yields a short diagnostic text instead of an error.
func (c *Composer) SelectToolSection(ctx context.Context, section string) (template.HTML, error) {
	switch section {
	case data.SectionAdmin:
		return c.adminSection(ctx)
	default:
		return c.text(locale.MsgUnknownSection) + template.HTML(template.HTMLEscapeString(section)), nil
	}
}

// SetToolSection places a tool section in the tool pane.
func (c *Composer) SetToolSection(ctx context.Context, section string) error {
	html, err := c.SelectToolSection(ctx, section)
	if err != nil {
		return err
	}
	c.SetToolContent(html)
	return nil
}

func (c *Composer) adminSection(ctx context.Context) (template.HTML, error) {
	logg := logging.Enter(ctx, "ui.toolsection.admin", nil)
	u := c.req.User
	if u == nil || u.IsNobody() {
		logging.Exit(logg, "denied", nil)
		return c.text(locale.MsgNoAdminAccess), nil
	}

	flags := ComputeAccessFlags(u)
	tc := data.ToolSectionContext{
		Lang:         c.req.Locale,
		SectionAdmin: true,
		IsSuperAdmin: flags.IsSuperAdmin,
		IsOwner:      flags.IsOwner,
	}

	var err error
	if flags.IsSuperAdmin || flags.IsOwner {
		tc.FormAction = c.deps.Options.AdminHref
		filter := dbo.NodeFilter{}
		if !flags.IsSuperAdmin {
			id := u.GetID()
			filter.OwnerUserID = &id
		}
		tc.NodeUI, err = c.deps.Nodes.Render(ctx, c.req.Locale, ParamObjectID, filter)
		if err != nil {
			logging.ExitErr(logg, err)
			return "", err
		}
	}
	if flags.IsSuperAdmin {
		tc.NetworkUI, err = c.deps.Networks.Render(ctx, c.req.Locale, ParamObjectID)
		if err != nil {
			logging.ExitErr(logg, err)
			return "", err
		}
	}

	html, err := c.deps.Renderer.Fetch(ToolSectionTemplate, tc)
	if err != nil {
		logging.ExitErr(logg, err)
		return "", err
	}
	logging.Exit(logg, "ok", map[string]any{"super_admin": flags.IsSuperAdmin, "owner": flags.IsOwner})
	return html, nil
}
