package portal

import (
	"errors"
	"fmt"

	"github.com/ignisVeneficus/wifiportal/config/validate"
	"golang.org/x/text/language"
)

func (p PortalConfig) Validate(v *validate.ValidationErrors, path string) {
	p.validateLocales(v, path+"/locales")

	validate.CheckDir(path+"/content/root", p.Content.Root, true, v)
	validate.RequireString(v, path+"/content/url", p.Content.URL)
	validate.RequireString(v, path+"/content/stylesheet", p.Content.Stylesheet)
	validate.RequireString(v, path+"/admin_href", p.AdminHref)
	validate.CheckDir(path+"/templates/custom", p.Templates.Custom, false, v)
}

func (p PortalConfig) validateLocales(v *validate.ValidationErrors, path string) {
	if len(p.Locales) == 0 {
		err := errors.New("at least one locale must be defined")
		validate.LogConfigError(path, nil, err)
		v.Add(err)
		return
	}

	seen := map[string]struct{}{}
	for i, l := range p.Locales {
		base := fmt.Sprintf("%s[%d]", path, i)
		if _, err := language.Parse(l.ID); err != nil {
			validate.LogConfigError(base+"/id", l.ID, err)
			v.Add(fmt.Errorf("%s/id: %w", base, err))
		} else {
			validate.LogConfigOK(base+"/id", l.ID)
		}
		if _, ok := seen[l.ID]; ok {
			err := errors.New("duplicate locale id")
			validate.LogConfigError(base+"/id", l.ID, err)
			v.Add(fmt.Errorf("%s/id: %w", base, err))
		}
		seen[l.ID] = struct{}{}
		validate.RequireString(v, base+"/name", l.Name)
	}

	if _, ok := seen[p.DefaultLocale]; !ok {
		err := fmt.Errorf("default_locale %q is not a configured locale", p.DefaultLocale)
		validate.LogConfigError("portal/default_locale", p.DefaultLocale, err)
		v.Add(err)
	}
}
