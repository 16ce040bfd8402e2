package ui

import (
	"bytes"
	"context"
	"html/template"
	"net/url"
	"strings"
	"testing"

	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func display(t *testing.T, c *Composer) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Display(context.Background(), &buf))
}

func TestDebugOutputGating(t *testing.T) {
	cases := []struct {
		name      string
		flag      bool
		super     bool
		anonymous bool
		exposed   bool
	}{
		{name: "flag and super admin", flag: true, super: true, exposed: true},
		{name: "flag without super admin", flag: true},
		{name: "super admin without flag", super: true},
		{name: "neither"},
		{name: "flag and anonymous", flag: true, anonymous: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			params := url.Values{"gw_id": {"cafe"}}
			if tc.flag {
				params.Set(ParamDebug, "")
			}
			req := Request{Params: params}
			if !tc.anonymous {
				req.User = fakeUser{name: "u", super: tc.super}
			}
			display(t, h.composer(req))

			dc := h.renderer.lastDisplay(t)
			assert.Equal(t, tc.exposed, dc.DebugRequested)
			if tc.exposed {
				assert.Contains(t, dc.DebugOutput, "debug_request")
				assert.Contains(t, dc.DebugOutput, "cafe")
			} else {
				assert.Empty(t, dc.DebugOutput)
			}
		})
	}
}

func TestDisplayFlagsAndToolPane(t *testing.T) {
	h := newHarness(t)
	display(t, h.composer(Request{User: fakeUser{owner: true}}))

	dc := h.renderer.lastDisplay(t)
	assert.True(t, dc.IsOwner)
	assert.False(t, dc.IsSuperAdmin)
	assert.True(t, dc.ToolPaneEnabled)
	assert.Equal(t, template.HTML("<"+ToolContentTemplate+">"), dc.ToolPaneContent)
	assert.Equal(t, "/content/common/stylesheet.css", dc.StylesheetURL)
	assert.Equal(t, "en", dc.Lang)
}

func TestDisplayTwiceLeavesNoStaleValues(t *testing.T) {
	h := newHarness(t)
	c := h.composer(Request{
		User:   fakeUser{super: true},
		Params: url.Values{ParamDebug: {"1"}},
	})
	c.SetMainContent("<p>first</p>")
	c.SetHTMLHeader("<meta>")
	c.AddFooterScript("<script>a()</script>")
	display(t, c)
	first := h.renderer.lastDisplay(t)
	assert.True(t, first.DebugRequested)
	assert.True(t, first.ToolPaneEnabled)

	c2 := h.composer(Request{User: fakeUser{}})
	c2.SetToolSectionEnabled(false)
	display(t, c2)
	second := h.renderer.lastDisplay(t)
	assert.False(t, second.DebugRequested)
	assert.Empty(t, second.DebugOutput)
	assert.False(t, second.IsSuperAdmin)
	assert.False(t, second.ToolPaneEnabled)
	assert.Empty(t, second.ToolPaneContent)
	assert.Empty(t, second.MainContent)
	assert.Empty(t, second.HTMLHeaders)
	assert.Empty(t, second.FooterScripts)

	// the same composer rendered again only shows its current state
	c.SetToolSectionEnabled(false)
	c.SetMainContent("")
	display(t, c)
	third := h.renderer.lastDisplay(t)
	assert.False(t, third.ToolPaneEnabled)
	assert.Empty(t, third.ToolPaneContent)
	assert.Empty(t, third.MainContent)
	assert.Len(t, third.FooterScripts, 1)
}

func TestFooterScriptsAreCopied(t *testing.T) {
	h := newHarness(t)
	c := h.composer(Request{})
	c.AddFooterScript("<script>a()</script>")
	display(t, c)
	c.AddFooterScript("<script>b()</script>")
	assert.Len(t, h.renderer.lastDisplay(t).FooterScripts, 1)
}

func TestStylesheetResolution(t *testing.T) {
	cases := map[string]string{
		"cafe":    "/content/node/cafe/stylesheet.css",
		"lib":     "/content/default/stylesheet.css",
		"dir":     "/content/default/stylesheet.css",
		"../cafe": "/content/default/stylesheet.css",
		"..":      "/content/default/stylesheet.css",
		"":        "/content/default/stylesheet.css",
	}
	for gw, want := range cases {
		t.Run(gw, func(t *testing.T) {
			h := newHarness(t)
			display(t, h.composer(Request{Params: url.Values{"gw_id": {gw}}}))
			assert.Equal(t, want, h.renderer.lastDisplay(t).StylesheetParsedFile)
		})
	}
}

func TestStylesheetFromSessionGateway(t *testing.T) {
	h := newHarness(t)
	display(t, h.composer(Request{Session: mapSession{"gw_id": "cafe"}}))
	assert.Equal(t, "/content/node/cafe/stylesheet.css", h.renderer.lastDisplay(t).StylesheetParsedFile)
}

func TestDisplayError(t *testing.T) {
	h := newHarness(t)
	c := h.composer(Request{})
	var buf bytes.Buffer
	require.NoError(t, c.DisplayError(context.Background(), &buf, `<b>Oops</b><script>alert(1)</script>`, true))

	fetched := h.renderer.fetched(ErrorTemplate)
	require.Len(t, fetched, 1)
	ec := fetched[0].data.(data.ErrorContext)
	assert.Contains(t, string(ec.Error), "<b>Oops</b>")
	assert.False(t, strings.Contains(string(ec.Error), "<script>"))
	assert.True(t, ec.ShowTechSupportEmail)
	assert.Equal(t, "help@zap.example", ec.TechSupportEmail)

	dc := h.renderer.lastDisplay(t)
	assert.Equal(t, template.HTML("<"+ErrorTemplate+">"), dc.MainContent)
}

func TestDisplayErrorWithoutSupportEmail(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.composer(Request{}).DisplayError(context.Background(), &bytes.Buffer{}, "gone", false))
	ec := h.renderer.fetched(ErrorTemplate)[0].data.(data.ErrorContext)
	assert.False(t, ec.ShowTechSupportEmail)
	assert.Empty(t, ec.TechSupportEmail)
}

func TestDisplayRendererErrorPropagates(t *testing.T) {
	h := newHarness(t)
	h.renderer.err = errRender
	var buf bytes.Buffer
	err := h.composer(Request{}).Display(context.Background(), &buf)
	assert.ErrorIs(t, err, errRender)
	assert.Zero(t, buf.Len())
}
