package portal

import "strings"

const (
	DefaultContentURL = "/content/"
	DefaultStylesheet = "stylesheet.css"
	DefaultAdminHref  = "/admin/generic_object_admin"

	// sub directories of the content root
	CommonDir  = "common"
	DefaultDir = "default"
	NodeDir    = "node"
	PagesDir   = "pages"
)

type LocaleConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type PortalConfig struct {
	// Locales keeps the order of the YAML list; the language chooser
	// follows it.
	Locales       []LocaleConfig `yaml:"locales"`
	DefaultLocale string         `yaml:"default_locale"`
	Content       ContentConfig  `yaml:"content"`
	AdminHref     string         `yaml:"admin_href"`
	Templates     struct {
		Custom string `yaml:"custom"`
	} `yaml:"templates"`
}

type ContentConfig struct {
	Root       string `yaml:"root"`
	URL        string `yaml:"url"`
	Stylesheet string `yaml:"stylesheet"`
}

func (p *PortalConfig) TransformBeforeValidation() {
	if p.Content.URL == "" {
		p.Content.URL = DefaultContentURL
	}
	if p.Content.Stylesheet == "" {
		p.Content.Stylesheet = DefaultStylesheet
	}
	if p.AdminHref == "" {
		p.AdminHref = DefaultAdminHref
	}
	if p.DefaultLocale == "" && len(p.Locales) > 0 {
		p.DefaultLocale = p.Locales[0].ID
	}
}

func (p *PortalConfig) TransformAfterValidation() error {
	if !strings.HasSuffix(p.Content.URL, "/") {
		p.Content.URL += "/"
	}
	return nil
}

// CommonStylesheetURL is the stylesheet shared by every node.
func (c ContentConfig) CommonStylesheetURL() string {
	return c.URL + CommonDir + "/" + c.Stylesheet
}
