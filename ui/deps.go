package ui

import (
	"context"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/ignisVeneficus/wifiportal/db/dbo"
	"github.com/ignisVeneficus/wifiportal/locale"
	"golang.org/x/text/message"
)

// Template names fetched by the composer.
const (
	DisplayTemplate     = "classes/display.html"
	ToolSectionTemplate = "classes/tool_section.html"
	ToolContentTemplate = "classes/tool_content.html"
	ErrorTemplate       = "sites/error.html"
)

const (
	// ParamObjectID names the selector controls of the admin section.
	ParamObjectID = "object_id"
	// ParamDebug asks for the request dump; only super admins get it.
	ParamDebug = "debug_request"
)

// User is the identity behind a request. A nil User is an anonymous client.
type User interface {
	IsNobody() bool
	IsSuperAdmin() bool
	IsOwner() bool
	GetUsername() string
	GetID() uint64
}

// Session exposes the values kept for the client between requests. Empty
// values are reported as absent.
type Session interface {
	Get(key string) (string, bool)
}

type Renderer interface {
	Fetch(name string, data any) (template.HTML, error)
	Display(w io.Writer, name string, data any) error
}

// NodeSelector renders a node picker. The filter is applied by the storage
// layer, so it holds whatever the markup around it looks like.
type NodeSelector interface {
	Render(ctx context.Context, lang string, param string, filter dbo.NodeFilter) (template.HTML, error)
}

type NetworkSelector interface {
	Render(ctx context.Context, lang string, param string) (template.HTML, error)
}

type LocaleTable interface {
	Locales() []locale.Locale
	Printer(id string) *message.Printer
}

// Options is the static part of the page chrome.
type Options struct {
	// Content is the content root holding common/, default/ and node/<gw_id>/.
	Content    fs.FS
	ContentURL string
	Stylesheet string
	AdminHref  string
}

// Deps are the collaborators shared by every composer of the process.
type Deps struct {
	Renderer Renderer
	Nodes    NodeSelector
	Networks NetworkSelector
	Locales  LocaleTable
	Options  Options
}

// Request is everything the composer reads about the current request.
type Request struct {
	User    User
	Session Session
	Params  url.Values
	// URI is the request URI the language chooser posts back to.
	URI     string
	Locale  string
	Network dbo.Network
}
