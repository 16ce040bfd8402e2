package ui

import (
	"html/template"
	"net/url"

	"github.com/ignisVeneficus/wifiportal/auth"
	"github.com/ignisVeneficus/wifiportal/tpl/data"
	"github.com/ignisVeneficus/wifiportal/utils"
)

// GatewayContext identifies the gateway a client is captured by. It is only
// usable when all three fields are set.
type GatewayContext struct {
	ID      string
	Address string
	Port    string
}

func (g GatewayContext) Complete() bool {
	return g.ID != "" && g.Address != "" && g.Port != ""
}

// Query is the URL-encoded gw_id, gw_address, gw_port triple in that order.
func (g GatewayContext) Query() string {
	return data.NewURL("").
		With(auth.SessionGatewayID, g.ID).
		With(auth.SessionGatewayAddress, g.Address).
		With(auth.SessionGatewayPort, g.Port).
		Query()
}

// LoginParameters starts a query string; the result is HTML-escaped.
func (g GatewayContext) LoginParameters() string {
	return "?" + template.HTMLEscapeString(g.Query())
}

// LogoutParameters extends an existing query string; the result is
// HTML-escaped.
func (g GatewayContext) LogoutParameters() string {
	return "&amp;" + template.HTMLEscapeString(g.Query())
}

func sessionValue(s Session, key string) string {
	if s == nil {
		return ""
	}
	v, _ := s.Get(key)
	return v
}

// SessionGateway reads the gateway remembered in the session.
func SessionGateway(s Session) (GatewayContext, bool) {
	g := GatewayContext{
		ID:      sessionValue(s, auth.SessionGatewayID),
		Address: sessionValue(s, auth.SessionGatewayAddress),
		Port:    sessionValue(s, auth.SessionGatewayPort),
	}
	return g, g.Complete()
}

// ResolveGateway takes each field from the request parameters, falling back
// to the session field by field.
func ResolveGateway(params url.Values, s Session) (GatewayContext, bool) {
	pick := func(key string) string {
		return utils.FirstNonEmpty(params.Get(key), sessionValue(s, key))
	}
	g := GatewayContext{
		ID:      pick(auth.SessionGatewayID),
		Address: pick(auth.SessionGatewayAddress),
		Port:    pick(auth.SessionGatewayPort),
	}
	return g, g.Complete()
}
