package selector

import (
	"context"
	"html/template"
	"strconv"

	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/ignisVeneficus/wifiportal/tpl/functions"
)

const SelectTemplate = "partials/select.html"

type Fetcher interface {
	Fetch(name string, data any) (template.HTML, error)
}

// NodeSelector renders a <select> of the nodes a filter allows.
type NodeSelector struct {
	db       *dao.Database
	renderer Fetcher
}

func NewNodeSelector(db *dao.Database, renderer Fetcher) *NodeSelector {
	return &NodeSelector{db: db, renderer: renderer}
}

func (s *NodeSelector) Render(ctx context.Context, lang string, param string, filter dbo.NodeFilter) (template.HTML, error) {
	logg := logging.Enter(ctx, "selector.node.render", map[string]any{"param": param, "lang": lang})
	nodes, err := dao.ListNodes(s.db, ctx, filter)
	if err != nil {
		logging.ExitErr(logg, err)
		return "", err
	}
	functions.SortNodesByLocale(nodes, lang)

	sc := data.SelectContext{Name: param, Options: make([]data.SelectOption, 0, len(nodes))}
	for _, n := range nodes {
		sc.Options = append(sc.Options, data.SelectOption{
			Value: idString(n.ID),
			Label: functions.NodeLabel(n),
		})
	}
	html, err := s.renderer.Fetch(SelectTemplate, sc)
	if err != nil {
		logging.ExitErr(logg, err)
		return "", err
	}
	logging.Exit(logg, "ok", map[string]any{"count": len(nodes)})
	return html, nil
}

// NetworkSelector renders a <select> of every network.
type NetworkSelector struct {
	db       *dao.Database
	renderer Fetcher
}

func NewNetworkSelector(db *dao.Database, renderer Fetcher) *NetworkSelector {
	return &NetworkSelector{db: db, renderer: renderer}
}

func (s *NetworkSelector) Render(ctx context.Context, lang string, param string) (template.HTML, error) {
	logg := logging.Enter(ctx, "selector.network.render", map[string]any{"param": param, "lang": lang})
	networks, err := dao.ListNetworks(s.db, ctx)
	if err != nil {
		logging.ExitErr(logg, err)
		return "", err
	}
	functions.SortNetworksByLocale(networks, lang)

	sc := data.SelectContext{Name: param, Options: make([]data.SelectOption, 0, len(networks))}
	for _, n := range networks {
		sc.Options = append(sc.Options, data.SelectOption{
			Value:    idString(n.ID),
			Label:    n.Name,
			Selected: n.IsDefault,
		})
	}
	html, err := s.renderer.Fetch(SelectTemplate, sc)
	if err != nil {
		logging.ExitErr(logg, err)
		return "", err
	}
	logging.Exit(logg, "ok", map[string]any{"count": len(networks)})
	return html, nil
}

func idString(id *uint64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(*id, 10)
}
