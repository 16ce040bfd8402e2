package locale

import (
	"fmt"

	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is one selectable interface language.
type Locale struct {
	ID   string
	Name string
	Tag  language.Tag
}

// Table is the configured set of interface languages in configuration order.
type Table struct {
	locales []Locale
	index   map[string]int
	matcher language.Matcher
	def     string
}

func NewTable(cfg []portalConfig.LocaleConfig, defaultID string) (*Table, error) {
	if len(cfg) == 0 {
		return nil, fmt.Errorf("locale table is empty")
	}
	t := &Table{
		locales: make([]Locale, 0, len(cfg)),
		index:   make(map[string]int, len(cfg)),
		def:     defaultID,
	}
	tags := make([]language.Tag, 0, len(cfg))
	for _, l := range cfg {
		tag, err := language.Parse(l.ID)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", l.ID, err)
		}
		if _, ok := t.index[l.ID]; ok {
			return nil, fmt.Errorf("locale %q defined twice", l.ID)
		}
		t.index[l.ID] = len(t.locales)
		t.locales = append(t.locales, Locale{ID: l.ID, Name: l.Name, Tag: tag})
		tags = append(tags, tag)
	}
	if _, ok := t.index[defaultID]; !ok {
		t.def = t.locales[0].ID
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// Locales returns the table in configuration order.
func (t *Table) Locales() []Locale {
	return t.locales
}

func (t *Table) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

func (t *Table) Default() string {
	return t.def
}

// Resolve picks the active locale id: an explicit request choice, then the
// one remembered in the session, then the best Accept-Language match, then
// the default. Unknown ids are skipped.
func (t *Table) Resolve(requested, session, acceptLanguage string) string {
	if t.Has(requested) {
		return requested
	}
	if t.Has(session) {
		return session
	}
	if acceptLanguage != "" {
		prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(prefs) > 0 {
			_, idx, conf := t.matcher.Match(prefs...)
			if conf != language.No {
				return t.locales[idx].ID
			}
		}
	}
	return t.def
}

func (t *Table) Tag(id string) language.Tag {
	if i, ok := t.index[id]; ok {
		return t.locales[i].Tag
	}
	return t.locales[t.index[t.def]].Tag
}

// Printer formats translated messages for the locale id.
func (t *Table) Printer(id string) *message.Printer {
	return message.NewPrinter(t.Tag(id))
}

// Translate formats key in the language given by a BCP 47 id. Templates
// reach it through the "tr" function.
func Translate(id string, key string, args ...any) string {
	tag, err := language.Parse(id)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf(key, args...)
}
