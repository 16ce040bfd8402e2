package tpl

import (
	"html/template"

	"github.com/ignisVeneficus/wifiportal/locale"
	"gopkg.in/yaml.v3"
)

func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// debug
		"dump": func(v any) string {
			b, err := yaml.Marshal(v)
			if err != nil {
				return err.Error()
			}
			return string(b)
		},
		"tr":         locale.Translate,
		"portalHref": PortalHref,
	}
}

// PortalHref renders an href attribute from a path and a query fragment that
// is already HTML-escaped (the gateway parameter strings built by the ui
// package). The path itself is escaped here.
func PortalHref(path string, params string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + template.HTMLEscapeString(path) + params + `"`)
}
