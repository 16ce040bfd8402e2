package ui

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/url"
	"testing"
	"testing/fstest"

	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/locale"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	data any
}

type fakeRenderer struct {
	fetches  []call
	displays []call
	err      error
}

func (r *fakeRenderer) Fetch(name string, d any) (template.HTML, error) {
	r.fetches = append(r.fetches, call{name, d})
	if r.err != nil {
		return "", r.err
	}
	return template.HTML("<" + name + ">"), nil
}

func (r *fakeRenderer) Display(w io.Writer, name string, d any) error {
	r.displays = append(r.displays, call{name, d})
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, name)
	return err
}

func (r *fakeRenderer) lastDisplay(t *testing.T) data.DisplayContext {
	t.Helper()
	require.NotEmpty(t, r.displays)
	dc, ok := r.displays[len(r.displays)-1].data.(data.DisplayContext)
	require.True(t, ok)
	return dc
}

func (r *fakeRenderer) fetched(name string) []call {
	var out []call
	for _, c := range r.fetches {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

type fakeUser struct {
	id     uint64
	name   string
	nobody bool
	super  bool
	owner  bool
}

func (u fakeUser) IsNobody() bool      { return u.nobody }
func (u fakeUser) IsSuperAdmin() bool  { return u.super }
func (u fakeUser) IsOwner() bool       { return u.owner }
func (u fakeUser) GetUsername() string { return u.name }
func (u fakeUser) GetID() uint64       { return u.id }

type fakeNodes struct {
	filters []dbo.NodeFilter
	err     error
}

func (n *fakeNodes) Render(_ context.Context, _ string, param string, filter dbo.NodeFilter) (template.HTML, error) {
	n.filters = append(n.filters, filter)
	if n.err != nil {
		return "", n.err
	}
	return template.HTML("<nodes " + param + ">"), nil
}

type fakeNetworks struct {
	calls int
}

func (n *fakeNetworks) Render(_ context.Context, _ string, param string) (template.HTML, error) {
	n.calls++
	return template.HTML("<networks " + param + ">"), nil
}

type mapSession map[string]string

func (s mapSession) Get(key string) (string, bool) {
	v, ok := s[key]
	if v == "" {
		return "", false
	}
	return v, ok
}

var errRender = errors.New("render failed")

var testNetwork = dbo.Network{
	Name:             "Zap",
	HomepageURL:      "https://zap.example",
	TechSupportEmail: "help@zap.example",
}

type harness struct {
	renderer *fakeRenderer
	nodes    *fakeNodes
	networks *fakeNetworks
	deps     Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	table, err := locale.NewTable([]portalConfig.LocaleConfig{
		{ID: "en", Name: "English"},
		{ID: "fr", Name: "Français"},
		{ID: "de", Name: "Deutsch"},
	}, "en")
	require.NoError(t, err)

	h := &harness{
		renderer: &fakeRenderer{},
		nodes:    &fakeNodes{},
		networks: &fakeNetworks{},
	}
	h.deps = Deps{
		Renderer: h.renderer,
		Nodes:    h.nodes,
		Networks: h.networks,
		Locales:  table,
		Options: Options{
			Content: fstest.MapFS{
				"common/stylesheet.css":     {Data: []byte("body{}")},
				"default/stylesheet.css":    {Data: []byte("body{}")},
				"node/cafe/stylesheet.css":  {Data: []byte("body{color:red}")},
				"node/dir/stylesheet.css/x": {Data: []byte("")},
				"node/lib/other-file.txt":   {Data: []byte("")},
			},
			ContentURL: "/content/",
			Stylesheet: "stylesheet.css",
			AdminHref:  "/admin/generic_object_admin",
		},
	}
	return h
}

func (h *harness) composer(req Request) *Composer {
	if req.Locale == "" {
		req.Locale = "en"
	}
	if req.Network.Name == "" {
		req.Network = testNetwork
	}
	return New(h.deps, req)
}

func gatewayParams(id, address, port string) url.Values {
	v := url.Values{}
	if id != "" {
		v.Set("gw_id", id)
	}
	if address != "" {
		v.Set("gw_address", address)
	}
	if port != "" {
		v.Set("gw_port", port)
	}
	return v
}
