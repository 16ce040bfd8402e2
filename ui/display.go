package ui

import (
	"context"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"slices"
	"strings"

	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var errorPolicy = bluemonday.UGCPolicy()

// Display renders the whole page to w.
func (c *Composer) Display(ctx context.Context, w io.Writer) error {
	logg := logging.Enter(ctx, "ui.display", map[string]any{"uri": c.req.URI})

	flags := ComputeAccessFlags(c.req.User)
	dc := data.DisplayContext{
		Lang:                 c.req.Locale,
		Title:                c.title,
		HTMLHeaders:          c.htmlHeaders,
		StylesheetURL:        c.deps.Options.ContentURL + portalConfig.CommonDir + "/" + c.deps.Options.Stylesheet,
		StylesheetParsedFile: c.stylesheetFile(),
		IsSuperAdmin:         flags.IsSuperAdmin,
		IsOwner:              flags.IsOwner,
		MainContent:          c.mainContent,
		FooterScripts:        slices.Clone(c.footerScripts),
	}

	if _, requested := c.req.Params[ParamDebug]; requested && flags.IsSuperAdmin {
		dc.DebugRequested = true
		dc.DebugOutput = dumpParams(c.req.Params)
	}

	if c.toolSectionEnabled {
		html, err := c.SelectToolContent(ctx, data.SectionStart)
		if err != nil {
			logging.ExitErr(logg, err)
			return err
		}
		dc.ToolPaneEnabled = true
		dc.ToolPaneContent = html
	}

	if err := c.deps.Renderer.Display(w, DisplayTemplate, dc); err != nil {
		logging.ExitErr(logg, err)
		return err
	}
	logging.Exit(logg, "ok", map[string]any{"debug": dc.DebugRequested, "tool_pane": dc.ToolPaneEnabled})
	return nil
}

// DisplayError renders message as the main content of the page. The message
// may carry simple markup; anything unsafe is stripped.
func (c *Composer) DisplayError(ctx context.Context, w io.Writer, message string, showTechSupportEmail bool) error {
	email := c.req.Network.TechSupportEmail
	ec := data.ErrorContext{
		Lang:                 c.req.Locale,
		Error:                template.HTML(errorPolicy.Sanitize(message)),
		ShowTechSupportEmail: showTechSupportEmail && email != "",
	}
	if ec.ShowTechSupportEmail {
		ec.TechSupportEmail = email
	}
	html, err := c.deps.Renderer.Fetch(ErrorTemplate, ec)
	if err != nil {
		return err
	}
	c.SetMainContent(html)
	return c.Display(ctx, w)
}

// stylesheetFile is the node stylesheet when the node has its own, the
// default one otherwise.
func (c *Composer) stylesheetFile() string {
	opts := c.deps.Options
	defaultFile := opts.ContentURL + portalConfig.DefaultDir + "/" + opts.Stylesheet

	// the node only needs the gateway id, the rest of the triple may be missing
	gw, _ := ResolveGateway(c.req.Params, c.req.Session)
	if gw.ID == "" || opts.Content == nil || strings.ContainsAny(gw.ID, `/\`) {
		return defaultFile
	}
	name := portalConfig.NodeDir + "/" + gw.ID + "/" + opts.Stylesheet
	if !fs.ValidPath(name) {
		return defaultFile
	}
	if fi, err := fs.Stat(opts.Content, name); err != nil || fi.IsDir() {
		return defaultFile
	}
	return opts.ContentURL + portalConfig.NodeDir + "/" + url.PathEscape(gw.ID) + "/" + opts.Stylesheet
}

func dumpParams(params url.Values) string {
	out, err := yaml.Marshal(map[string][]string(params))
	if err != nil {
		return err.Error()
	}
	return string(out)
}
