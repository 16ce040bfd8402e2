package locale

import (
	"testing"

	portalConfig "github.com/ignisVeneficus/wifiportal/config/portal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]portalConfig.LocaleConfig{
		{ID: "en", Name: "English"},
		{ID: "fr", Name: "Français"},
		{ID: "de", Name: "Deutsch"},
	}, "en")
	require.NoError(t, err)
	return table
}

func TestTableKeepsOrder(t *testing.T) {
	table := testTable(t)
	var ids []string
	for _, l := range table.Locales() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"en", "fr", "de"}, ids)
	assert.True(t, table.Has("fr"))
	assert.False(t, table.Has("fr-CA"))
}

func TestResolve(t *testing.T) {
	table := testTable(t)
	tests := []struct {
		name      string
		requested string
		session   string
		accept    string
		want      string
	}{
		{"request wins", "fr", "de", "de", "fr"},
		{"session next", "", "de", "fr", "de"},
		{"unknown request skipped", "es", "de", "", "de"},
		{"accept language", "", "", "de-CH,de;q=0.9,en;q=0.5", "de"},
		{"no match falls back", "", "", "ja", "en"},
		{"broken header falls back", "", "", ";;;q=x", "en"},
		{"nothing", "", "", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.requested, tt.session, tt.accept))
		})
	}
}

func TestNewTableErrors(t *testing.T) {
	_, err := NewTable(nil, "en")
	assert.Error(t, err)

	_, err = NewTable([]portalConfig.LocaleConfig{{ID: "en"}, {ID: "en"}}, "en")
	assert.Error(t, err)

	_, err = NewTable([]portalConfig.LocaleConfig{{ID: "not a tag!"}}, "")
	assert.Error(t, err)
}

func TestUnknownDefaultUsesFirst(t *testing.T) {
	table, err := NewTable([]portalConfig.LocaleConfig{{ID: "fr"}, {ID: "en"}}, "es")
	require.NoError(t, err)
	assert.Equal(t, "fr", table.Default())
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Serveur d'authentification Zap", Translate("fr", MsgAuthServer, "Zap"))
	assert.Equal(t, "Zap authentication server", Translate("en", MsgAuthServer, "Zap"))
	assert.Equal(t, "Zap authentication server", Translate("", MsgAuthServer, "Zap"))

	table := testTable(t)
	assert.Equal(t, "Langue", table.Printer("fr").Sprintf(MsgLanguage))
	assert.Equal(t, "Language", table.Printer("de").Sprintf(MsgLanguage))
}
