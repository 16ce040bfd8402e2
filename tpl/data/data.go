package data

import "html/template"

// Section names understood by the tool pane.
const (
	SectionAdmin = "ADMIN"
	SectionStart = "START"
	SectionLogin = "LOGIN"
)

// DisplayContext feeds classes/display.html. A new value is built for every
// render.
type DisplayContext struct {
	Lang                 string
	Title                string
	HTMLHeaders          template.HTML
	StylesheetURL        string
	StylesheetParsedFile string

	IsSuperAdmin bool
	IsOwner      bool

	DebugRequested bool
	DebugOutput    string

	ToolPaneEnabled bool
	ToolPaneContent template.HTML
	MainContent     template.HTML
	FooterScripts   []template.HTML
}

// ToolSectionContext feeds classes/tool_section.html.
type ToolSectionContext struct {
	Lang         string
	SectionAdmin bool
	IsSuperAdmin bool
	IsOwner      bool
	FormAction   string
	NodeUI       template.HTML
	NetworkUI    template.HTML
}

type LocaleOption struct {
	ID          string
	DisplayName string
	IsSelected  bool
}

// ToolContentContext feeds classes/tool_content.html. LogoutParameters and
// LoginParameters are HTML-escaped query fragments.
type ToolContentContext struct {
	Lang         string
	SectionStart bool
	SectionLogin bool

	NetworkHomepageURL string
	NetworkName        string

	IsValidUser      bool
	Username         string
	LogoutParameters string
	LoginParameters  string

	FormAction      string
	LanguageChooser []LocaleOption

	ToolContent            template.HTML
	AccountInformation     string
	TechSupportInformation template.HTML
}

// ErrorContext feeds sites/error.html.
type ErrorContext struct {
	Lang                 string
	Error                template.HTML
	ShowTechSupportEmail bool
	TechSupportEmail     string
}

type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// SelectContext feeds partials/select.html.
type SelectContext struct {
	Name    string
	Options []SelectOption
}

// PageContext feeds the markdown content pages before they become the main
// content of a display.
type PageContext struct {
	Lang  string
	Name  string
	Title string
	Body  template.HTML
}
